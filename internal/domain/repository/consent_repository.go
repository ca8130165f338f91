package repository

import (
	"context"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ConsentRepository defines the operations for the append-only consent ledger.
// Records are never updated or deleted; every consent action adds a new row.
type ConsentRepository interface {
	// Record appends one consent record to the ledger.
	Record(ctx context.Context, record *entity.ConsentRecord) error

	// RecordAll appends multiple consent records in a single statement.
	RecordAll(ctx context.Context, records []*entity.ConsentRecord) error

	// FindByUserID retrieves the full consent history for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error)
}
