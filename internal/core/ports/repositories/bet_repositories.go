package repositories

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// BetReader defines read operations for bet data.
type BetReader interface {
	// FindBetByID retrieves a specific bet by its ID.
	FindBetByID(ctx context.Context, betID string) (*domain.Bet, error)

	// FindBetsByUser retrieves all bets placed by a user.
	FindBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error)
}

// BetWriter defines write operations for bet data.
type BetWriter interface {
	// SaveBet persists a new bet. The storage layer enforces the
	// (user_id, stage) uniqueness constraint and returns
	// apperrors.ErrDuplicate when it is violated.
	SaveBet(ctx context.Context, bet domain.Bet) error

	// UpdateBet replaces the picked team of an existing bet.
	UpdateBet(ctx context.Context, bet domain.Bet) error
}

// BetRepositoryFacade combines all bet-related repository interfaces.
type BetRepositoryFacade interface {
	BetReader
	BetWriter
}
