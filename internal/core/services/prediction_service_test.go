package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fifabets/fifa_betting_app/internal/apperrors"
	"github.com/fifabets/fifa_betting_app/internal/core/domain"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/core/services"
	"github.com/fifabets/fifa_betting_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PredictionRepository ---
type MockPredictionRepository struct {
	mock.Mock
}

func (m *MockPredictionRepository) FindPredictionsByUser(ctx context.Context, userID string) ([]domain.Prediction, error) {
	args := m.Called(ctx, userID)
	var predictions []domain.Prediction
	if args.Get(0) != nil {
		predictions = args.Get(0).([]domain.Prediction)
	}
	return predictions, args.Error(1)
}

func (m *MockPredictionRepository) UpsertPrediction(ctx context.Context, prediction domain.Prediction) (*domain.Prediction, error) {
	args := m.Called(ctx, prediction)
	var stored *domain.Prediction
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.Prediction)
	}
	return stored, args.Error(1)
}

// --- Mock MatchRepository ---
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) FindMatchByID(ctx context.Context, matchID string) (*domain.Match, error) {
	args := m.Called(ctx, matchID)
	var match *domain.Match
	if args.Get(0) != nil {
		match = args.Get(0).(*domain.Match)
	}
	return match, args.Error(1)
}

func (m *MockMatchRepository) FindMatches(ctx context.Context, stage domain.MatchStage) ([]domain.Match, error) {
	args := m.Called(ctx, stage)
	var matches []domain.Match
	if args.Get(0) != nil {
		matches = args.Get(0).([]domain.Match)
	}
	return matches, args.Error(1)
}

// --- Test Suite ---
type PredictionServiceTestSuite struct {
	suite.Suite
	mockPredictionRepo *MockPredictionRepository
	mockMatchRepo      *MockMatchRepository
	service            portssvc.PredictionSvcFacade
	now                time.Time
}

func (suite *PredictionServiceTestSuite) SetupTest() {
	suite.mockPredictionRepo = new(MockPredictionRepository)
	suite.mockMatchRepo = new(MockMatchRepository)
	suite.now = time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	suite.service = services.NewPredictionService(
		suite.mockPredictionRepo,
		suite.mockMatchRepo,
		services.WithPredictionClock(func() time.Time { return suite.now }),
	)
}

func (suite *PredictionServiceTestSuite) upcomingMatch() *domain.Match {
	return &domain.Match{
		MatchID:    uuid.NewString(),
		HomeTeamID: uuid.NewString(),
		AwayTeamID: uuid.NewString(),
		KickoffAt:  suite.now.Add(2 * time.Hour),
		Stage:      domain.StageGroup,
	}
}

func scoreReq(home, away int) dto.UpsertPredictionRequest {
	return dto.UpsertPredictionRequest{PredictedHomeScore: &home, PredictedAwayScore: &away}
}

func (suite *PredictionServiceTestSuite) TestUpsertPrediction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	match := suite.upcomingMatch()

	suite.mockMatchRepo.On("FindMatchByID", ctx, match.MatchID).Return(match, nil).Once()
	suite.mockPredictionRepo.On("UpsertPrediction", ctx, mock.MatchedBy(func(p domain.Prediction) bool {
		return p.UserID == userID &&
			p.MatchID == match.MatchID &&
			p.PredictedHomeScore == 2 &&
			p.PredictedAwayScore == 1
	})).Return(&domain.Prediction{
		PredictionID:       uuid.NewString(),
		UserID:             userID,
		MatchID:            match.MatchID,
		PredictedHomeScore: 2,
		PredictedAwayScore: 1,
		CreatedAt:          suite.now,
	}, nil).Once()

	prediction, err := suite.service.UpsertPrediction(ctx, userID, match.MatchID, scoreReq(2, 1))

	suite.Require().NoError(err)
	suite.Require().NotNil(prediction)
	suite.Equal(2, prediction.PredictedHomeScore)
	suite.mockPredictionRepo.AssertExpectations(suite.T())
	suite.mockMatchRepo.AssertExpectations(suite.T())
}

func (suite *PredictionServiceTestSuite) TestUpsertPrediction_UnknownMatch() {
	ctx := context.Background()
	matchID := uuid.NewString()

	suite.mockMatchRepo.On("FindMatchByID", ctx, matchID).Return(nil, apperrors.ErrNotFound).Once()

	prediction, err := suite.service.UpsertPrediction(ctx, uuid.NewString(), matchID, scoreReq(1, 0))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(prediction)
	suite.mockPredictionRepo.AssertNotCalled(suite.T(), "UpsertPrediction", mock.Anything, mock.Anything)
}

func (suite *PredictionServiceTestSuite) TestUpsertPrediction_KickedOff() {
	ctx := context.Background()
	match := suite.upcomingMatch()
	// Kickoff exactly now: predictions close at kickoff, not after it
	match.KickoffAt = suite.now

	suite.mockMatchRepo.On("FindMatchByID", ctx, match.MatchID).Return(match, nil).Once()

	prediction, err := suite.service.UpsertPrediction(ctx, uuid.NewString(), match.MatchID, scoreReq(1, 0))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMatchLocked)
	suite.Nil(prediction)
	suite.mockPredictionRepo.AssertNotCalled(suite.T(), "UpsertPrediction", mock.Anything, mock.Anything)
}

func (suite *PredictionServiceTestSuite) TestUpsertPrediction_CompletedMatch() {
	ctx := context.Background()
	match := suite.upcomingMatch()
	// Completed matches stay locked regardless of the clock
	match.IsCompleted = true

	suite.mockMatchRepo.On("FindMatchByID", ctx, match.MatchID).Return(match, nil).Once()

	prediction, err := suite.service.UpsertPrediction(ctx, uuid.NewString(), match.MatchID, scoreReq(1, 0))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMatchLocked)
	suite.Nil(prediction)
}

func (suite *PredictionServiceTestSuite) TestListPredictions_EmptyNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockPredictionRepo.On("FindPredictionsByUser", ctx, userID).Return(nil, nil).Once()

	predictions, err := suite.service.ListPredictions(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(predictions)
	suite.Empty(predictions)
	suite.mockPredictionRepo.AssertExpectations(suite.T())
}

func TestPredictionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PredictionServiceTestSuite))
}
