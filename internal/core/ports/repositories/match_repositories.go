package repositories

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// MatchReader defines read operations for match data.
type MatchReader interface {
	// FindMatchByID retrieves a specific match with team names resolved.
	FindMatchByID(ctx context.Context, matchID string) (*domain.Match, error)

	// FindMatches retrieves matches ordered by kickoff time, optionally
	// filtered by stage (empty stage means all).
	FindMatches(ctx context.Context, stage domain.MatchStage) ([]domain.Match, error)
}

// MatchRepositoryFacade combines all match-related repository interfaces.
type MatchRepositoryFacade interface {
	MatchReader
}
