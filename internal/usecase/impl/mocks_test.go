package impl

import (
	"context"
	"time"

	"innkeep/internal/domain/entity"
	"innkeep/internal/domain/repository"
	"innkeep/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository and service interfaces.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *mockUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

type mockConsentRepo struct{ mock.Mock }

func (m *mockConsentRepo) Record(ctx context.Context, record *entity.ConsentRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockConsentRepo) RecordAll(ctx context.Context, records []*entity.ConsentRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *mockConsentRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ConsentRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ConsentRecord), args.Error(1)
}

type mockResetTokenRepo struct{ mock.Mock }

func (m *mockResetTokenRepo) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockResetTokenRepo) FindByToken(ctx context.Context, token string) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PasswordResetToken), args.Error(1)
}

func (m *mockResetTokenRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResetTokenRepo) InvalidateOthers(ctx context.Context, userID, exceptID uuid.UUID) error {
	return m.Called(ctx, userID, exceptID).Error(0)
}

func (m *mockResetTokenRepo) DeleteExpired(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockHotelRepo struct{ mock.Mock }

func (m *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindFirstByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	return m.Called(ctx, hotel).Error(0)
}

func (m *mockHotelRepo) Patch(ctx context.Context, id uuid.UUID, patch *repository.HotelPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *mockHotelRepo) List(ctx context.Context) ([]*entity.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindTranslation(ctx context.Context, hotelID uuid.UUID, locale string) (*entity.HotelTranslation, error) {
	args := m.Called(ctx, hotelID, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.HotelTranslation), args.Error(1)
}

func (m *mockHotelRepo) UpsertTranslation(ctx context.Context, translation *entity.HotelTranslation) error {
	return m.Called(ctx, translation).Error(0)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.RoomType, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RoomType), args.Error(1)
}

func (m *mockRoomRepo) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RoomType), args.Error(1)
}

func (m *mockRoomRepo) FindActiveByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.RoomType, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RoomType), args.Error(1)
}

func (m *mockRoomRepo) Create(ctx context.Context, roomType *entity.RoomType) error {
	return m.Called(ctx, roomType).Error(0)
}

func (m *mockRoomRepo) Update(ctx context.Context, roomType *entity.RoomType) error {
	return m.Called(ctx, roomType).Error(0)
}

func (m *mockRoomRepo) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	return m.Called(ctx, hotelID, id).Error(0)
}

type mockAddonRepo struct{ mock.Mock }

func (m *mockAddonRepo) FindByID(ctx context.Context, hotelID, id uuid.UUID) (*entity.Addon, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Addon), args.Error(1)
}

func (m *mockAddonRepo) FindByHotel(ctx context.Context, hotelID uuid.UUID) ([]*entity.Addon, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Addon), args.Error(1)
}

func (m *mockAddonRepo) Create(ctx context.Context, addon *entity.Addon) error {
	return m.Called(ctx, addon).Error(0)
}

func (m *mockAddonRepo) Update(ctx context.Context, addon *entity.Addon) error {
	return m.Called(ctx, addon).Error(0)
}

func (m *mockAddonRepo) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	return m.Called(ctx, hotelID, id).Error(0)
}

// fakeTxManager runs the callback synchronously against a factory backed by
// the test's mocks, so transactional flows are observable without a database.
type fakeTxManager struct {
	users  *mockUserRepo
	consts *mockConsentRepo
	tokens *mockResetTokenRepo
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) NewUserRepository() repository.UserRepository {
	return f.users
}

func (f *fakeTxManager) NewConsentRepository() repository.ConsentRepository {
	return f.consts
}

func (f *fakeTxManager) NewResetTokenRepository() repository.ResetTokenRepository {
	return f.tokens
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *mockHasher) ValidateStrength(password string) error {
	return m.Called(password).Error(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) Issue(user *entity.User) (string, error) {
	args := m.Called(user)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockRateProvider struct{ mock.Mock }

func (m *mockRateProvider) Rates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[string]float64), args.Error(1)
}

type mockPrefillProvider struct{ mock.Mock }

func (m *mockPrefillProvider) ForOwner(ctx context.Context, ownerID uuid.UUID) (*service.HotelPrefill, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.HotelPrefill), args.Error(1)
}
