package services

import (
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	portssvc "github.com/fifabets/fifa_betting_app/internal/core/ports/services"
	"github.com/fifabets/fifa_betting_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.NotifierSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.UserRepo, notifier)
	container.Team = NewTeamService(repos.TeamRepo)
	container.Match = NewMatchService(repos.MatchRepo)
	container.Prediction = NewPredictionService(repos.PredictionRepo, repos.MatchRepo)
	container.Bet = NewBetService(repos.BetRepo, repos.TeamRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
	_ portssvc.TeamSvcFacade       = (*teamService)(nil)
	_ portssvc.MatchSvcFacade      = (*matchService)(nil)
	_ portssvc.PredictionSvcFacade = (*predictionService)(nil)
	_ portssvc.BetSvcFacade        = (*betService)(nil)
)
