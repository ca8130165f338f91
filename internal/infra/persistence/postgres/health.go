package postgres

import (
	"context"

	"innkeep/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// PingAll verifies both logical connections: the booking schema on the
// primary source and the shared auth schema behind the resolver.
func PingAll(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return errors.Wrap(err, "booking database ping failed")
	}

	if err := db.Clauses(dbresolver.Use(authResolverName)).WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return errors.Wrap(err, "auth database ping failed")
	}

	return nil
}
