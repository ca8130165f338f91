package postgres

import (
	"context"
	"time"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the domain.ResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository is the constructor for resetTokenRepository.
func NewResetTokenRepository(db *gorm.DB) repository.ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create persists a new password reset token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByToken retrieves a reset token record by its token value.
func (repo *resetTokenRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	var tokenM model.ResetTokenModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find reset token")
	}

	return toResetTokenDomain(&tokenM), nil
}

// MarkUsed flips the used flag only when the token is still unused. The
// predicate makes redemption race-safe: concurrent requests see exactly one
// winner, everyone else gets ErrResetTokenConsumed.
func (repo *resetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("id = ? AND used = false", id).
		Update("used", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reset token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenConsumed
	}

	return nil
}

// InvalidateOthers marks all other unused tokens for a user as used.
func (repo *resetTokenRepository) InvalidateOthers(ctx context.Context, userID uuid.UUID, exceptID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ResetTokenModel{}).
		Where("user_id = ? AND id <> ? AND used = false", userID, exceptID).
		Update("used", true).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate reset tokens")
	}

	return nil
}

// DeleteExpired removes all expired tokens from the database.
func (repo *resetTokenRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.ResetTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete expired reset tokens")
	}

	return nil
}
