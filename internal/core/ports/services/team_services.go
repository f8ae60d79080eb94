package services

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// TeamReaderSvc defines read operations for team data.
type TeamReaderSvc interface {
	// GetTeamByID retrieves a team by ID.
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)

	// ListTeams retrieves all teams.
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// TeamSvcFacade combines all team-related service interfaces.
type TeamSvcFacade interface {
	TeamReaderSvc
}
