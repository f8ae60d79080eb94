package services

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	"github.com/fifabets/fifa_betting_app/internal/dto"
)

// AuthSvcFacade orchestrates registration, login, the password-reset token
// lifecycle and current-user lookup.
type AuthSvcFacade interface {
	// Register creates a new active account with a hashed password and
	// triggers a best-effort welcome email. It fails with
	// apperrors.ErrDuplicateEmail / ErrDuplicateUsername on conflicts and
	// with errors wrapping apperrors.ErrValidation on policy violations.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies the credentials and issues a session token. Unknown
	// email and wrong password both fail with apperrors.ErrInvalidCredentials;
	// a correct password on a deactivated account fails with
	// apperrors.ErrAccountDisabled.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// RequestPasswordReset issues a single-use reset token and dispatches the
	// reset email. It reports success whether or not the email is registered.
	RequestPasswordReset(ctx context.Context, req dto.ForgotPasswordRequest) error

	// ResetPassword consumes a reset token and replaces the password hash.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error

	// GetCurrentUser returns the account for userID if it exists and is
	// active; missing and deactivated accounts both yield apperrors.ErrNotFound.
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
