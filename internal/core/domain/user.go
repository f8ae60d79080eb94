package domain

import "time"

// User represents a registered account in the core domain.
// This is the primary representation used by services; the password hash and
// reset-token fields never leave the service layer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// PasswordResetToken and PasswordResetTokenExpiresAt are set together when
	// a reset is requested and cleared together when a reset succeeds or is
	// superseded. A non-nil token implies a non-nil expiry.
	PasswordResetToken          *string    `json:"-"`
	PasswordResetTokenExpiresAt *time.Time `json:"-"`
}
