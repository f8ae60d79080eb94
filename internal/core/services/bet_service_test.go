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

// --- Mock BetRepository ---
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) FindBetByID(ctx context.Context, betID string) (*domain.Bet, error) {
	args := m.Called(ctx, betID)
	var bet *domain.Bet
	if args.Get(0) != nil {
		bet = args.Get(0).(*domain.Bet)
	}
	return bet, args.Error(1)
}

func (m *MockBetRepository) FindBetsByUser(ctx context.Context, userID string) ([]domain.Bet, error) {
	args := m.Called(ctx, userID)
	var bets []domain.Bet
	if args.Get(0) != nil {
		bets = args.Get(0).([]domain.Bet)
	}
	return bets, args.Error(1)
}

func (m *MockBetRepository) SaveBet(ctx context.Context, bet domain.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) UpdateBet(ctx context.Context, bet domain.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

// --- Mock TeamRepository ---
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	var team *domain.Team
	if args.Get(0) != nil {
		team = args.Get(0).(*domain.Team)
	}
	return team, args.Error(1)
}

func (m *MockTeamRepository) FindTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	var teams []domain.Team
	if args.Get(0) != nil {
		teams = args.Get(0).([]domain.Team)
	}
	return teams, args.Error(1)
}

// --- Test Suite ---
type BetServiceTestSuite struct {
	suite.Suite
	mockBetRepo  *MockBetRepository
	mockTeamRepo *MockTeamRepository
	service      portssvc.BetSvcFacade
	now          time.Time
}

func (suite *BetServiceTestSuite) SetupTest() {
	suite.mockBetRepo = new(MockBetRepository)
	suite.mockTeamRepo = new(MockTeamRepository)
	suite.now = time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	suite.service = services.NewBetService(
		suite.mockBetRepo,
		suite.mockTeamRepo,
		services.WithBetClock(func() time.Time { return suite.now }),
	)
}

func (suite *BetServiceTestSuite) TestPlaceBet_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	teamID := uuid.NewString()
	team := &domain.Team{TeamID: teamID, Name: "Brazil", GroupLetter: "G"}

	suite.mockTeamRepo.On("FindTeamByID", ctx, teamID).Return(team, nil).Once()
	suite.mockBetRepo.On("SaveBet", ctx, mock.MatchedBy(func(bet domain.Bet) bool {
		return bet.UserID == userID &&
			bet.Stage == domain.BetWinner &&
			bet.SelectedTeamID == teamID &&
			bet.CreatedAt.Equal(suite.now)
	})).Return(nil).Once()

	bet, err := suite.service.PlaceBet(ctx, userID, dto.CreateBetRequest{
		Stage:          string(domain.BetWinner),
		SelectedTeamID: teamID,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(bet)
	suite.NotEmpty(bet.BetID)
	suite.mockBetRepo.AssertExpectations(suite.T())
	suite.mockTeamRepo.AssertExpectations(suite.T())
}

func (suite *BetServiceTestSuite) TestPlaceBet_UnknownTeam() {
	ctx := context.Background()
	teamID := uuid.NewString()

	suite.mockTeamRepo.On("FindTeamByID", ctx, teamID).Return(nil, apperrors.ErrNotFound).Once()

	bet, err := suite.service.PlaceBet(ctx, uuid.NewString(), dto.CreateBetRequest{
		Stage:          string(domain.BetRunnerUp),
		SelectedTeamID: teamID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(bet)
	suite.mockBetRepo.AssertNotCalled(suite.T(), "SaveBet", mock.Anything, mock.Anything)
}

func (suite *BetServiceTestSuite) TestPlaceBet_SecondBetSameStage() {
	ctx := context.Background()
	teamID := uuid.NewString()
	team := &domain.Team{TeamID: teamID, Name: "France", GroupLetter: "D"}

	suite.mockTeamRepo.On("FindTeamByID", ctx, teamID).Return(team, nil).Once()
	suite.mockBetRepo.On("SaveBet", ctx, mock.AnythingOfType("domain.Bet")).Return(apperrors.ErrDuplicate).Once()

	bet, err := suite.service.PlaceBet(ctx, uuid.NewString(), dto.CreateBetRequest{
		Stage:          string(domain.BetWinner),
		SelectedTeamID: teamID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(bet)
	suite.mockBetRepo.AssertExpectations(suite.T())
}

func (suite *BetServiceTestSuite) TestUpdateBet_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	newTeamID := uuid.NewString()
	existing := &domain.Bet{
		BetID:          uuid.NewString(),
		UserID:         userID,
		Stage:          domain.BetWinner,
		SelectedTeamID: uuid.NewString(),
		CreatedAt:      suite.now.Add(-time.Hour),
	}
	newTeam := &domain.Team{TeamID: newTeamID, Name: "Argentina", GroupLetter: "C"}

	suite.mockBetRepo.On("FindBetByID", ctx, existing.BetID).Return(existing, nil).Once()
	suite.mockTeamRepo.On("FindTeamByID", ctx, newTeamID).Return(newTeam, nil).Once()
	suite.mockBetRepo.On("UpdateBet", ctx, mock.MatchedBy(func(bet domain.Bet) bool {
		return bet.BetID == existing.BetID &&
			bet.SelectedTeamID == newTeamID &&
			bet.UpdatedAt != nil && bet.UpdatedAt.Equal(suite.now)
	})).Return(nil).Once()

	bet, err := suite.service.UpdateBet(ctx, userID, existing.BetID, dto.UpdateBetRequest{SelectedTeamID: newTeamID})

	suite.Require().NoError(err)
	suite.Equal(newTeamID, bet.SelectedTeamID)
	suite.mockBetRepo.AssertExpectations(suite.T())
}

func (suite *BetServiceTestSuite) TestUpdateBet_NotOwner() {
	ctx := context.Background()
	existing := &domain.Bet{
		BetID:          uuid.NewString(),
		UserID:         uuid.NewString(),
		Stage:          domain.BetWinner,
		SelectedTeamID: uuid.NewString(),
	}

	suite.mockBetRepo.On("FindBetByID", ctx, existing.BetID).Return(existing, nil).Once()

	bet, err := suite.service.UpdateBet(ctx, uuid.NewString(), existing.BetID, dto.UpdateBetRequest{
		SelectedTeamID: uuid.NewString(),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(bet)
	suite.mockBetRepo.AssertNotCalled(suite.T(), "UpdateBet", mock.Anything, mock.Anything)
}

func (suite *BetServiceTestSuite) TestUpdateBet_NotFound() {
	ctx := context.Background()
	betID := uuid.NewString()

	suite.mockBetRepo.On("FindBetByID", ctx, betID).Return(nil, apperrors.ErrNotFound).Once()

	bet, err := suite.service.UpdateBet(ctx, uuid.NewString(), betID, dto.UpdateBetRequest{
		SelectedTeamID: uuid.NewString(),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(bet)
}

func (suite *BetServiceTestSuite) TestListBets_EmptyNotNil() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockBetRepo.On("FindBetsByUser", ctx, userID).Return(nil, nil).Once()

	bets, err := suite.service.ListBets(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(bets)
	suite.Empty(bets)
	suite.mockBetRepo.AssertExpectations(suite.T())
}

func TestBetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BetServiceTestSuite))
}
