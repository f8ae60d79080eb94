package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
)

type matchService struct {
	matchRepo portsrepo.MatchRepositoryFacade
}

// NewMatchService creates a new MatchSvcFacade implementation.
func NewMatchService(matchRepo portsrepo.MatchRepositoryFacade) portssvc.MatchSvcFacade {
	return &matchService{matchRepo: matchRepo}
}

func (s *matchService) GetMatchByID(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match by ID in service: %w", err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, stage domain.MatchStage) ([]domain.Match, error) {
	matches, err := s.matchRepo.FindMatches(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches in service: %w", err)
	}
	if matches == nil {
		return []domain.Match{}, nil
	}
	return matches, nil
}
