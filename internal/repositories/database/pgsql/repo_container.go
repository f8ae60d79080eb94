package pgsql

import (
	portsrepo "github.com/fifabets/fifa_betting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of pgx-backed repositories
// sharing a single connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:       NewPgxUserRepository(pool),
		TeamRepo:       NewPgxTeamRepository(pool),
		MatchRepo:      NewPgxMatchRepository(pool),
		PredictionRepo: NewPgxPredictionRepository(pool),
		BetRepo:        NewPgxBetRepository(pool),
	}
}
