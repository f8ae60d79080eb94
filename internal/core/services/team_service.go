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

type teamService struct {
	teamRepo portsrepo.TeamRepositoryFacade
}

// NewTeamService creates a new TeamSvcFacade implementation.
func NewTeamService(teamRepo portsrepo.TeamRepositoryFacade) portssvc.TeamSvcFacade {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by ID in service: %w", err)
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teamRepo.FindTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams in service: %w", err)
	}
	// Return empty slice if no teams found, not nil
	if teams == nil {
		return []domain.Team{}, nil
	}
	return teams, nil
}
