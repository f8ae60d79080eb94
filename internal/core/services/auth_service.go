package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"time"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/fifabets/fifa_betting_app/internal/middleware"
	"github.com/fifabets/fifa_betting_app/internal/platform/config"
	"github.com/fifabets/fifa_betting_app/internal/utils"
	"github.com/google/uuid"
)

// notifyTimeout bounds a single fire-and-forget email dispatch. The triggering
// request has usually completed by the time the send finishes.
const notifyTimeout = 15 * time.Second

// resetTokenBytes is the entropy of an opaque reset token; 32 bytes hex-encode
// to a 64-character string.
const resetTokenBytes = 32

// authService orchestrates register / login / password reset / current-user
// lookup against the user repository, the password hasher and the notifier.
type authService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
	notifier portssvc.NotifierSvc
	now      func() time.Time
}

// AuthServiceOption configures an authService.
type AuthServiceOption func(*authService)

// WithClock overrides the authService time source. Used by tests.
func WithClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.now = now
	}
}

// NewAuthService creates a new AuthSvcFacade implementation.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, notifier portssvc.NotifierSvc, opts ...AuthServiceOption) portssvc.AuthSvcFacade {
	s := &authService{
		cfg:      cfg,
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	emailExists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailExists {
		return nil, apperrors.ErrDuplicateEmail
	}

	usernameExists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if usernameExists {
		return nil, apperrors.ErrDuplicateUsername
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique constraints in the store are the authoritative duplicate
	// check; the existence checks above only produce the friendlier error
	// before hashing. Concurrent registrations surface here.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) || errors.Is(err, apperrors.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))

	s.dispatch(logger, "welcome", user.Email, func(sendCtx context.Context) error {
		return s.notifier.SendWelcomeEmail(sendCtx, user.Email, user.Username)
	})

	return &user, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a wrong password so the response does not reveal
			// whether the email is registered.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed: password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Warn("Login rejected: account deactivated", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrAccountDisabled
	}

	expiresAt := s.now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, user.Username, s.cfg.JWTSecret, expiresAt, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))

	return &dto.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, req dto.ForgotPasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Report success either way so the endpoint cannot be used to
			// enumerate registered emails. No account mutation, no email.
			logger.Info("Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to find user by email: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.ResetTokenExpiryDuration)

	// A new request supersedes any previous token; both fields move together.
	user.PasswordResetToken = &token
	user.PasswordResetTokenExpiresAt = &expiresAt
	user.UpdatedAt = now

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s?token=%s&email=%s", req.ResetURL, url.QueryEscape(token), url.QueryEscape(user.Email))

	logger.Info("Password reset token issued", slog.String("user_id", user.UserID))

	s.dispatch(logger, "password reset", user.Email, func(sendCtx context.Context) error {
		return s.notifier.SendPasswordResetEmail(sendCtx, user.Email, resetLink, user.Username)
	})

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidResetRequest
		}
		return fmt.Errorf("failed to find user by email: %w", err)
	}

	if user.PasswordResetToken == nil || user.PasswordResetTokenExpiresAt == nil ||
		*user.PasswordResetToken != req.Token ||
		!s.now().Before(*user.PasswordResetTokenExpiresAt) {
		logger.Warn("Password reset rejected: invalid or expired token", slog.String("user_id", user.UserID))
		return apperrors.ErrInvalidOrExpiredToken
	}

	if err := s.validateNewPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Consume the token: hash replaced and both token fields cleared in the
	// same row update.
	user.PasswordHash = passwordHash
	user.PasswordResetToken = nil
	user.PasswordResetTokenExpiresAt = nil
	user.UpdatedAt = s.now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Info("Password reset completed", slog.String("user_id", user.UserID))
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	// Deactivated accounts are indistinguishable from missing ones on this
	// read endpoint.
	if !user.IsActive {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *authService) validateRegistration(req dto.RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("all fields are required: %w", apperrors.ErrValidation)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("email is not well-formed: %w", apperrors.ErrValidation)
	}
	return s.validateNewPassword(req.Password, req.ConfirmPassword)
}

func (s *authService) validateNewPassword(password, confirmPassword string) error {
	if len(password) < s.cfg.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", s.cfg.MinPasswordLength, apperrors.ErrValidation)
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match: %w", apperrors.ErrValidation)
	}
	return nil
}

// dispatch sends a notification on its own goroutine so a slow or unreachable
// sink never blocks or fails the triggering operation. Failures are logged.
func (s *authService) dispatch(logger *slog.Logger, kind, email string, send func(context.Context) error) {
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := send(sendCtx); err != nil {
			logger.Error("Failed to send email",
				slog.String("kind", kind),
				slog.String("email", email),
				slog.String("error", err.Error()))
		}
	}()
}
