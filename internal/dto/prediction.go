package dto

import (
	"time"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// UpsertPredictionRequest is the body of PUT /api/predictions/:matchID.
type UpsertPredictionRequest struct {
	PredictedHomeScore *int `json:"predictedHomeScore" binding:"required,min=0,max=99"`
	PredictedAwayScore *int `json:"predictedAwayScore" binding:"required,min=0,max=99"`
}

// PredictionResponse is the public view of a prediction.
type PredictionResponse struct {
	PredictionID       string     `json:"predictionID"`
	MatchID            string     `json:"matchID"`
	PredictedHomeScore int        `json:"predictedHomeScore"`
	PredictedAwayScore int        `json:"predictedAwayScore"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// ListPredictionsResponse wraps the caller's predictions.
type ListPredictionsResponse struct {
	Predictions []PredictionResponse `json:"predictions"`
}

// ToPredictionResponse converts a domain.Prediction to PredictionResponse.
func ToPredictionResponse(p *domain.Prediction) PredictionResponse {
	return PredictionResponse{
		PredictionID:       p.PredictionID,
		MatchID:            p.MatchID,
		PredictedHomeScore: p.PredictedHomeScore,
		PredictedAwayScore: p.PredictedAwayScore,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToListPredictionsResponse converts a slice of domain.Prediction to ListPredictionsResponse.
func ToListPredictionsResponse(predictions []domain.Prediction) ListPredictionsResponse {
	responses := make([]PredictionResponse, len(predictions))
	for i := range predictions {
		responses[i] = ToPredictionResponse(&predictions[i])
	}
	return ListPredictionsResponse{Predictions: responses}
}
