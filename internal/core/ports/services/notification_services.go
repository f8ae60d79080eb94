package services

import "context"

// NotifierSvc is the notification sink for account emails. Implementations
// are best-effort collaborators: callers dispatch fire-and-forget and must
// not let a send failure roll back the triggering operation.
type NotifierSvc interface {
	// SendWelcomeEmail sends the post-registration welcome email.
	SendWelcomeEmail(ctx context.Context, email, username string) error

	// SendPasswordResetEmail sends the reset link built from the requested
	// reset URL base plus token and email query parameters.
	SendPasswordResetEmail(ctx context.Context, email, resetLink, username string) error
}
