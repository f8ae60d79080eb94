package domain

import "time"

// MatchStage identifies the tournament stage a match belongs to.
type MatchStage string

const (
	StageGroup        MatchStage = "GroupStage"
	StageRound16      MatchStage = "Round16"
	StageQuarterFinal MatchStage = "QuarterFinal"
	StageSemiFinal    MatchStage = "SemiFinal"
	StageThirdPlace   MatchStage = "ThirdPlace"
	StageFinal        MatchStage = "Final"
)

// Match represents a scheduled or played tournament match.
// Scores stay nil until the match result is recorded.
type Match struct {
	MatchID      string     `json:"matchID"` // Primary Key (UUID)
	HomeTeamID   string     `json:"homeTeamID"`
	AwayTeamID   string     `json:"awayTeamID"`
	HomeTeamName string     `json:"homeTeamName,omitempty"` // Resolved on read
	AwayTeamName string     `json:"awayTeamName,omitempty"` // Resolved on read
	KickoffAt    time.Time  `json:"kickoffAt"`
	Stage        MatchStage `json:"stage"`
	GroupLetter  string     `json:"groupLetter,omitempty"` // Only for group stage matches
	HomeScore    *int       `json:"homeScore"`
	AwayScore    *int       `json:"awayScore"`
	IsCompleted  bool       `json:"isCompleted"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// IsLocked reports whether predictions for the match may no longer change.
func (m Match) IsLocked(now time.Time) bool {
	return m.IsCompleted || !now.Before(m.KickoffAt)
}
