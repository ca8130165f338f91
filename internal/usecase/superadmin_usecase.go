package usecase

import (
	"context"

	"innkeep/internal/domain/entity"
	"innkeep/internal/domain/repository"

	"github.com/google/uuid"
)

// SuperadminUsecase defines the platform administration operations.
// The delivery layer guards these behind the superadmin middleware.
type SuperadminUsecase interface {
	// ListUsers returns accounts matching the filter, newest first.
	ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error)

	// UpdateUserStatus moves an account to a new lifecycle status.
	UpdateUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*entity.User, error)

	// ListAllHotels returns every hotel on the platform, newest first.
	ListAllHotels(ctx context.Context) ([]*entity.Hotel, error)
}
