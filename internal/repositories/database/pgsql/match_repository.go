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

type PgxMatchRepository struct {
	db *pgxpool.Pool
}

func NewPgxMatchRepository(db *pgxpool.Pool) *PgxMatchRepository {
	return &PgxMatchRepository{db: db}
}

var _ portsrepo.MatchRepositoryFacade = (*PgxMatchRepository)(nil)

const matchSelect = `
	SELECT m.match_id, m.home_team_id, m.away_team_id, ht.name, awt.name,
	       m.kickoff_at, m.stage, COALESCE(m.group_letter, ''),
	       m.home_score, m.away_score, m.is_completed, m.created_at
	FROM matches m
	JOIN teams ht ON ht.team_id = m.home_team_id
	JOIN teams awt ON awt.team_id = m.away_team_id
`

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var match domain.Match
	err := row.Scan(
		&match.MatchID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.HomeTeamName,
		&match.AwayTeamName,
		&match.KickoffAt,
		&match.Stage,
		&match.GroupLetter,
		&match.HomeScore,
		&match.AwayScore,
		&match.IsCompleted,
		&match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *PgxMatchRepository) FindMatchByID(ctx context.Context, matchID string) (*domain.Match, error) {
	query := matchSelect + ` WHERE m.match_id = $1;`
	match, err := scanMatch(r.db.QueryRow(ctx, query, matchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find match by ID %s: %w", matchID, err)
	}
	return match, nil
}

func (r *PgxMatchRepository) FindMatches(ctx context.Context, stage domain.MatchStage) ([]domain.Match, error) {
	query := matchSelect
	args := []any{}
	if stage != "" {
		query += ` WHERE m.stage = $1`
		args = append(args, string(stage))
	}
	query += ` ORDER BY m.kickoff_at;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []domain.Match{}
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, *match)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating match rows: %w", rows.Err())
	}

	return matches, nil
}
