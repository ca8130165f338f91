package postgres

import (
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// jsonColumn renders a Go value as a jsonb literal for map-based Updates.
// Column updates through a map bypass the model's json serializer, so the
// marshalling happens here.
func jsonColumn(v any) clause.Expr {
	b, err := json.Marshal(v)
	if err != nil {
		// Values come from typed patch fields; marshalling only fails for
		// non-serializable map values, which validation rejects upstream.
		b = []byte("null")
	}

	return gorm.Expr("?::jsonb", string(b))
}
