package repositories

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// TeamReader defines read operations for team data.
type TeamReader interface {
	// FindTeamByID retrieves a specific team by its ID.
	FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error)

	// FindTeams retrieves all teams ordered by group and name.
	FindTeams(ctx context.Context) ([]domain.Team, error)
}

// TeamRepositoryFacade combines all team-related repository interfaces.
// Teams are reference data loaded by migrations; there is no write surface.
type TeamRepositoryFacade interface {
	TeamReader
}
