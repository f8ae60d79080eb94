package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateEmail indicates a registration attempt with an email that is already taken.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// ErrDuplicateUsername indicates a registration attempt with a username that is already taken.
var ErrDuplicateUsername = errors.New("a user with this username already exists")

// ErrInvalidCredentials is returned for both unknown email and wrong password.
// The two cases must stay indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAccountDisabled indicates the credentials were correct but the account is deactivated.
var ErrAccountDisabled = errors.New("account is deactivated")

// ErrInvalidResetRequest indicates a password reset attempt for an unknown account.
var ErrInvalidResetRequest = errors.New("invalid reset request")

// ErrInvalidOrExpiredToken indicates a reset token that does not match the stored
// one, was already consumed, or whose expiry has passed.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

// ErrUnauthorized indicates a missing or invalid session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates an attempt to act on another user's resource.
var ErrForbidden = errors.New("forbidden")

// ErrMatchLocked indicates a prediction for a match that has already kicked off
// or finished.
var ErrMatchLocked = errors.New("match is locked for predictions")
