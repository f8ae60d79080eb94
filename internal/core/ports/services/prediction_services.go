package services

import (
	"context"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	"github.com/fifabets/fifa_betting_app/internal/dto"
)

// PredictionSvcFacade manages score predictions for the authenticated user.
type PredictionSvcFacade interface {
	// UpsertPrediction creates or replaces the caller's prediction for a
	// match. It fails with apperrors.ErrNotFound for an unknown match and
	// apperrors.ErrMatchLocked once the match has kicked off or finished.
	UpsertPrediction(ctx context.Context, userID, matchID string, req dto.UpsertPredictionRequest) (*domain.Prediction, error)

	// ListPredictions retrieves all predictions made by the caller.
	ListPredictions(ctx context.Context, userID string) ([]domain.Prediction, error)
}
