package repositories

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email. The lookup is case-insensitive.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether a user with the given username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user. The storage layer enforces the email and
	// username uniqueness constraints and returns apperrors.ErrDuplicateEmail
	// or apperrors.ErrDuplicateUsername when they are violated, so concurrent
	// registrations cannot race past the service-level existence checks.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser replaces the mutable fields of an existing user, including
	// the password hash and both reset-token fields in a single statement.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
