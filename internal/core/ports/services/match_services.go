package services

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// MatchReaderSvc defines read operations for match data.
type MatchReaderSvc interface {
	// GetMatchByID retrieves a match by ID with team names resolved.
	GetMatchByID(ctx context.Context, matchID string) (*domain.Match, error)

	// ListMatches retrieves matches, optionally filtered by stage.
	ListMatches(ctx context.Context, stage domain.MatchStage) ([]domain.Match, error)
}

// MatchSvcFacade combines all match-related service interfaces.
type MatchSvcFacade interface {
	MatchReaderSvc
}
