package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"innkeep/internal/domain/entity"
	domainerrors "innkeep/internal/domain/errors"
	"innkeep/internal/domain/repository"
	"innkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type superadminFixture struct {
	users  *mockUserRepo
	hotels *mockHotelRepo
	srv    usecase.SuperadminUsecase
}

func newSuperadminFixture(t *testing.T) *superadminFixture {
	t.Helper()

	f := &superadminFixture{users: &mockUserRepo{}, hotels: &mockHotelRepo{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.srv = NewSuperadminService(f.users, f.hotels, logger)

	return f
}

func TestListUsers_FilterPassedThrough(t *testing.T) {
	f := newSuperadminFixture(t)
	filter := repository.UserFilter{Status: entity.StatusPending, Type: entity.UserTypeHotel}
	pending := []*entity.User{{ID: uuid.New(), Status: entity.StatusPending}}
	f.users.On("List", mock.Anything, filter).Return(pending, nil)

	got, err := f.srv.ListUsers(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestUpdateUserStatus(t *testing.T) {
	t.Run("verifies a pending account", func(t *testing.T) {
		f := newSuperadminFixture(t)
		userID := uuid.New()
		verified := &entity.User{ID: userID, Status: entity.StatusVerified}
		f.users.On("UpdateStatus", mock.Anything, userID, entity.StatusVerified).Return(nil)
		f.users.On("FindByID", mock.Anything, userID).Return(verified, nil)

		got, err := f.srv.UpdateUserStatus(context.Background(), userID, entity.StatusVerified)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusVerified, got.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newSuperadminFixture(t)

		_, err := f.srv.UpdateUserStatus(context.Background(), uuid.New(), entity.UserStatus("frozen"))
		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.HTTPCode(), appErr.HTTPCode())
		f.users.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing account", func(t *testing.T) {
		f := newSuperadminFixture(t)
		userID := uuid.New()
		f.users.On("UpdateStatus", mock.Anything, userID, entity.StatusSuspended).Return(repository.ErrUserNotFound)

		_, err := f.srv.UpdateUserStatus(context.Background(), userID, entity.StatusSuspended)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestListAllHotels(t *testing.T) {
	f := newSuperadminFixture(t)
	all := []*entity.Hotel{{ID: uuid.New()}, {ID: uuid.New()}}
	f.hotels.On("List", mock.Anything).Return(all, nil)

	got, err := f.srv.ListAllHotels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, got)
}
