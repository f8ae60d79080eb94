package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTeamRepository struct {
	db *pgxpool.Pool
}

func NewPgxTeamRepository(db *pgxpool.Pool) *PgxTeamRepository {
	return &PgxTeamRepository{db: db}
}

var _ portsrepo.TeamRepositoryFacade = (*PgxTeamRepository)(nil)

func (r *PgxTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query := `
		SELECT team_id, name, group_letter, COALESCE(flag_url, ''), created_at
		FROM teams
		WHERE team_id = $1;
	`
	var team domain.Team
	err := r.db.QueryRow(ctx, query, teamID).Scan(
		&team.TeamID,
		&team.Name,
		&team.GroupLetter,
		&team.FlagURL,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team by ID %s: %w", teamID, err)
	}
	return &team, nil
}

func (r *PgxTeamRepository) FindTeams(ctx context.Context) ([]domain.Team, error) {
	query := `
		SELECT team_id, name, group_letter, COALESCE(flag_url, ''), created_at
		FROM teams
		ORDER BY group_letter, name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []domain.Team{}
	for rows.Next() {
		var team domain.Team
		err := rows.Scan(
			&team.TeamID,
			&team.Name,
			&team.GroupLetter,
			&team.FlagURL,
			&team.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team row: %w", err)
		}
		teams = append(teams, team)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", rows.Err())
	}

	return teams, nil
}
