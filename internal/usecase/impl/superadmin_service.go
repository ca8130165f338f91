package impl

import (
	"context"
	"log/slog"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// superadminService implements the SuperadminUsecase interface.
type superadminService struct {
	userRepo  repository.UserRepository
	hotelRepo repository.HotelRepository
	logger    *slog.Logger
}

// NewSuperadminService is the constructor for superadminService.
func NewSuperadminService(
	userRepo repository.UserRepository,
	hotelRepo repository.HotelRepository,
	logger *slog.Logger,
) usecase.SuperadminUsecase {
	return &superadminService{
		userRepo:  userRepo,
		hotelRepo: hotelRepo,
		logger:    logger,
	}
}

// ListUsers returns accounts matching the filter, newest first.
func (srv *superadminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	return srv.userRepo.List(ctx, filter)
}

// UpdateUserStatus drives the account review lifecycle: pending accounts get
// verified or rejected, misbehaving ones suspended.
func (srv *superadminService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account status: " + status.String())
	}

	if err := srv.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to update user status")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user")
	}

	srv.logger.InfoContext(ctx, "account status updated",
		slog.String("userId", userID.String()),
		slog.String("status", status.String()),
	)

	return user, nil
}

// ListAllHotels returns every hotel on the platform, newest first.
func (srv *superadminService) ListAllHotels(ctx context.Context) ([]*entity.Hotel, error) {
	return srv.hotelRepo.List(ctx)
}
