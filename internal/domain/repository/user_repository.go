// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"innkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create or update would violate the unique email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserFilter narrows ListUsers results. Zero values mean "no filter".
type UserFilter struct {
	Status entity.UserStatus
	Type   entity.UserType
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The lookup is case-insensitive; emails are stored lowercased.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces only the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// UpdateStatus replaces the account status for a user.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error

	// List retrieves users matching the filter, newest first.
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
