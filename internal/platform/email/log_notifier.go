package email

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
)

// LogNotifier is a NotifierSvc that logs emails to the logger instead of
// sending them. Real SMTP delivery is a deployment concern wired in behind the
// same interface; note that this implementation logs recipient addresses and
// reset links, so it is not meant for production use.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

var _ portssvc.NotifierSvc = (*LogNotifier)(nil)

// SendWelcomeEmail logs the welcome email.
func (n *LogNotifier) SendWelcomeEmail(_ context.Context, email, username string) error {
	n.logger.Info("send email",
		slog.String("recipient", email),
		slog.String("subject", "Welcome to FIFA World Cup Betting!"),
		slog.String("body", fmt.Sprintf("Hello %s, your account is ready. Good luck with your predictions!", username)),
	)
	return nil
}

// SendPasswordResetEmail logs the password reset email.
func (n *LogNotifier) SendPasswordResetEmail(_ context.Context, email, resetLink, username string) error {
	n.logger.Info("send email",
		slog.String("recipient", email),
		slog.String("subject", "Reset Your Password - FIFA World Cup Betting"),
		slog.String("body", fmt.Sprintf("Hello %s, reset your password using this link (expires in 1 hour): %s", username, resetLink)),
	)
	return nil
}
