package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/google/uuid"
)

type predictionService struct {
	predictionRepo portsrepo.PredictionRepositoryFacade
	matchRepo      portsrepo.MatchRepositoryFacade
	now            func() time.Time
}

// PredictionServiceOption configures a predictionService.
type PredictionServiceOption func(*predictionService)

// WithPredictionClock overrides the predictionService time source. Used by tests.
func WithPredictionClock(now func() time.Time) PredictionServiceOption {
	return func(s *predictionService) {
		s.now = now
	}
}

// NewPredictionService creates a new PredictionSvcFacade implementation.
func NewPredictionService(predictionRepo portsrepo.PredictionRepositoryFacade, matchRepo portsrepo.MatchRepositoryFacade, opts ...PredictionServiceOption) portssvc.PredictionSvcFacade {
	s := &predictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *predictionService) UpsertPrediction(ctx context.Context, userID, matchID string, req dto.UpsertPredictionRequest) (*domain.Prediction, error) {
	match, err := s.matchRepo.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find match for prediction: %w", err)
	}

	if match.IsLocked(s.now()) {
		return nil, apperrors.ErrMatchLocked
	}

	// The store keeps the original row on conflict; CreatedAt doubles as the
	// update timestamp for a re-predict.
	prediction := domain.Prediction{
		PredictionID:       uuid.NewString(),
		UserID:             userID,
		MatchID:            matchID,
		PredictedHomeScore: *req.PredictedHomeScore,
		PredictedAwayScore: *req.PredictedAwayScore,
		CreatedAt:          s.now(),
	}

	stored, err := s.predictionRepo.UpsertPrediction(ctx, prediction)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert prediction: %w", err)
	}
	return stored, nil
}

func (s *predictionService) ListPredictions(ctx context.Context, userID string) ([]domain.Prediction, error) {
	predictions, err := s.predictionRepo.FindPredictionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions in service: %w", err)
	}
	if predictions == nil {
		return []domain.Prediction{}, nil
	}
	return predictions, nil
}
