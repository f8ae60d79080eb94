package pgsql

import (
	"context"
	"fmt"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPredictionRepository struct {
	db *pgxpool.Pool
}

func NewPgxPredictionRepository(db *pgxpool.Pool) *PgxPredictionRepository {
	return &PgxPredictionRepository{db: db}
}

var _ portsrepo.PredictionRepositoryFacade = (*PgxPredictionRepository)(nil)

func (r *PgxPredictionRepository) UpsertPrediction(ctx context.Context, prediction domain.Prediction) (*domain.Prediction, error) {
	// ON CONFLICT keeps the original prediction_id and created_at so a
	// re-predict shows as an update, not a new row.
	query := `
        INSERT INTO predictions (prediction_id, user_id, match_id, predicted_home_score, predicted_away_score, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NULL)
        ON CONFLICT (user_id, match_id) DO UPDATE SET
            predicted_home_score = EXCLUDED.predicted_home_score,
            predicted_away_score = EXCLUDED.predicted_away_score,
            updated_at = $6
        RETURNING prediction_id, user_id, match_id, predicted_home_score, predicted_away_score, created_at, updated_at;
    `
	var stored domain.Prediction
	err := r.db.QueryRow(ctx, query,
		prediction.PredictionID,
		prediction.UserID,
		prediction.MatchID,
		prediction.PredictedHomeScore,
		prediction.PredictedAwayScore,
		prediction.CreatedAt,
	).Scan(
		&stored.PredictionID,
		&stored.UserID,
		&stored.MatchID,
		&stored.PredictedHomeScore,
		&stored.PredictedAwayScore,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prediction: %w", err)
	}
	return &stored, nil
}

func (r *PgxPredictionRepository) FindPredictionsByUser(ctx context.Context, userID string) ([]domain.Prediction, error) {
	query := `
        SELECT p.prediction_id, p.user_id, p.match_id, p.predicted_home_score, p.predicted_away_score, p.created_at, p.updated_at
        FROM predictions p
        JOIN matches m ON m.match_id = p.match_id
        WHERE p.user_id = $1
        ORDER BY m.kickoff_at;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	predictions := []domain.Prediction{}
	for rows.Next() {
		var p domain.Prediction
		err := rows.Scan(
			&p.PredictionID,
			&p.UserID,
			&p.MatchID,
			&p.PredictedHomeScore,
			&p.PredictedAwayScore,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction row: %w", err)
		}
		predictions = append(predictions, p)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating prediction rows: %w", rows.Err())
	}

	return predictions, nil
}
