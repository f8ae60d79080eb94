package domain

import "time"

// BetStage labels a tournament-outcome pick, e.g. picking the overall winner.
type BetStage string

const (
	BetWinner   BetStage = "Winner"
	BetRunnerUp BetStage = "RunnerUp"
)

// Bet is a user's tournament-outcome pick. At most one bet exists per
// (user, stage) pair; re-picking updates the existing bet.
type Bet struct {
	BetID          string     `json:"betID"` // Primary Key (UUID)
	UserID         string     `json:"userID"`
	Stage          BetStage   `json:"stage"`
	SelectedTeamID string     `json:"selectedTeamID"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}
