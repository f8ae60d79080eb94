package repositories

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// PredictionReader defines read operations for prediction data.
type PredictionReader interface {
	// FindPredictionsByUser retrieves all predictions made by a user, ordered
	// by the kickoff time of the predicted match.
	FindPredictionsByUser(ctx context.Context, userID string) ([]domain.Prediction, error)
}

// PredictionWriter defines write operations for prediction data.
type PredictionWriter interface {
	// UpsertPrediction inserts or updates the prediction for
	// (prediction.UserID, prediction.MatchID) atomically and returns the
	// stored row. The (user_id, match_id) uniqueness is enforced by the
	// storage layer.
	UpsertPrediction(ctx context.Context, prediction domain.Prediction) (*domain.Prediction, error)
}

// PredictionRepositoryFacade combines all prediction-related repository interfaces.
type PredictionRepositoryFacade interface {
	PredictionReader
	PredictionWriter
}
