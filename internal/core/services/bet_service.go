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

type betService struct {
	betRepo  portsrepo.BetRepositoryFacade
	teamRepo portsrepo.TeamRepositoryFacade
	now      func() time.Time
}

// BetServiceOption configures a betService.
type BetServiceOption func(*betService)

// WithBetClock overrides the betService time source. Used by tests.
func WithBetClock(now func() time.Time) BetServiceOption {
	return func(s *betService) {
		s.now = now
	}
}

// NewBetService creates a new BetSvcFacade implementation.
func NewBetService(betRepo portsrepo.BetRepositoryFacade, teamRepo portsrepo.TeamRepositoryFacade, opts ...BetServiceOption) portssvc.BetSvcFacade {
	s := &betService{
		betRepo:  betRepo,
		teamRepo: teamRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *betService) PlaceBet(ctx context.Context, userID string, req dto.CreateBetRequest) (*domain.Bet, error) {
	if _, err := s.teamRepo.FindTeamByID(ctx, req.SelectedTeamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find selected team: %w", err)
	}

	bet := domain.Bet{
		BetID:          uuid.NewString(),
		UserID:         userID,
		Stage:          domain.BetStage(req.Stage),
		SelectedTeamID: req.SelectedTeamID,
		CreatedAt:      s.now(),
	}

	// The (user_id, stage) unique constraint in the store rejects a second
	// bet for the same stage.
	if err := s.betRepo.SaveBet(ctx, bet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save bet: %w", err)
	}
	return &bet, nil
}

func (s *betService) UpdateBet(ctx context.Context, userID, betID string, req dto.UpdateBetRequest) (*domain.Bet, error) {
	bet, err := s.betRepo.FindBetByID(ctx, betID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bet: %w", err)
	}
	if bet.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.teamRepo.FindTeamByID(ctx, req.SelectedTeamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find selected team: %w", err)
	}

	now := s.now()
	bet.SelectedTeamID = req.SelectedTeamID
	bet.UpdatedAt = &now

	if err := s.betRepo.UpdateBet(ctx, *bet); err != nil {
		return nil, fmt.Errorf("failed to update bet: %w", err)
	}
	return bet, nil
}

func (s *betService) ListBets(ctx context.Context, userID string) ([]domain.Bet, error) {
	bets, err := s.betRepo.FindBetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets in service: %w", err)
	}
	if bets == nil {
		return []domain.Bet{}, nil
	}
	return bets, nil
}
