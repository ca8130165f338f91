package postgres

import (
	"context"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consentRepository implements the domain.ConsentRepository interface using GORM.
type consentRepository struct {
	db *gorm.DB
}

// NewConsentRepository is the constructor for consentRepository.
func NewConsentRepository(db *gorm.DB) repository.ConsentRepository {
	return &consentRepository{db: db}
}

// Record appends one consent record to the ledger.
func (repo *consentRepository) Record(ctx context.Context, record *entity.ConsentRecord) error {
	consentM := fromConsentDomain(record)

	if err := repo.db.WithContext(ctx).Create(consentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record consent")
	}

	record.ID = consentM.ID
	record.CreatedAt = consentM.CreatedAt

	return nil
}

// RecordAll appends multiple consent records in a single statement.
func (repo *consentRepository) RecordAll(ctx context.Context, records []*entity.ConsentRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*model.ConsentModel, 0, len(records))
	for _, record := range records {
		models = append(models, fromConsentDomain(record))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record consents")
	}

	for i, m := range models {
		records[i].ID = m.ID
		records[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// FindByUserID retrieves the full consent history for a user, newest first.
func (repo *consentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error) {
	var models []*model.ConsentModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find consent history")
	}

	records := make([]*entity.ConsentRecord, 0, len(models))
	for _, m := range models {
		records = append(records, toConsentDomain(m))
	}

	return records, nil
}
