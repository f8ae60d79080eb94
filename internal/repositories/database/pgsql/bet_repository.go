package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBetRepository struct {
	db *pgxpool.Pool
}

func NewPgxBetRepository(db *pgxpool.Pool) *PgxBetRepository {
	return &PgxBetRepository{db: db}
}

var _ portsrepo.BetRepositoryFacade = (*PgxBetRepository)(nil)

func (r *PgxBetRepository) SaveBet(ctx context.Context, bet domain.Bet) error {
	query := `
        INSERT INTO bets (bet_id, user_id, stage, selected_team_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		bet.BetID,
		bet.UserID,
		string(bet.Stage),
		bet.SelectedTeamID,
		bet.CreatedAt,
		bet.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save bet: %w", err)
	}
	return nil
}

func (r *PgxBetRepository) FindBetByID(ctx context.Context, betID string) (*domain.Bet, error) {
	query := `
		SELECT bet_id, user_id, stage, selected_team_id, created_at, updated_at
		FROM bets
		WHERE bet_id = $1;
	`
	var bet domain.Bet
	err := r.db.QueryRow(ctx, query, betID).Scan(
		&bet.BetID,
		&bet.UserID,
		&bet.Stage,
		&bet.SelectedTeamID,
		&bet.CreatedAt,
		&bet.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bet by ID %s: %w", betID, err)
	}
	return &bet, nil
}

func (r *PgxBetRepository) FindBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	query := `
		SELECT bet_id, user_id, stage, selected_team_id, created_at, updated_at
		FROM bets
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets: %w", err)
	}
	defer rows.Close()

	bets := []domain.Bet{}
	for rows.Next() {
		var bet domain.Bet
		err := rows.Scan(
			&bet.BetID,
			&bet.UserID,
			&bet.Stage,
			&bet.SelectedTeamID,
			&bet.CreatedAt,
			&bet.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet row: %w", err)
		}
		bets = append(bets, bet)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bet rows: %w", rows.Err())
	}

	return bets, nil
}

func (r *PgxBetRepository) UpdateBet(ctx context.Context, bet domain.Bet) error {
	query := `
        UPDATE bets
        SET selected_team_id = $1, updated_at = $2
        WHERE bet_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, bet.SelectedTeamID, bet.UpdatedAt, bet.BetID)
	if err != nil {
		return fmt.Errorf("failed to execute update bet query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bet not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
