package services

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	"github.com/fifabets/fifa_betting_app/internal/dto"
)

// BetSvcFacade manages tournament-outcome bets for the authenticated user.
type BetSvcFacade interface {
	// PlaceBet creates a new bet. A second bet for the same stage fails with
	// apperrors.ErrDuplicate; an unknown team fails with apperrors.ErrNotFound.
	PlaceBet(ctx context.Context, userID string, req dto.CreateBetRequest) (*domain.Bet, error)

	// UpdateBet re-picks the team of an existing bet owned by the caller.
	// Bets of other users fail with apperrors.ErrForbidden.
	UpdateBet(ctx context.Context, userID, betID string, req dto.UpdateBetRequest) (*domain.Bet, error)

	// ListBets retrieves all bets placed by the caller.
	ListBets(ctx context.Context, userID string) ([]domain.Bet, error)
}
