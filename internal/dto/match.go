package dto

import (
	"time"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// ListMatchesParams defines query parameters for listing matches.
type ListMatchesParams struct {
	Stage string `form:"stage" binding:"omitempty,oneof=GroupStage Round16 QuarterFinal SemiFinal ThirdPlace Final"`
}

// MatchResponse is the public view of a match, with team names resolved.
type MatchResponse struct {
	MatchID      string    `json:"matchID"`
	HomeTeamID   string    `json:"homeTeamID"`
	AwayTeamID   string    `json:"awayTeamID"`
	HomeTeamName string    `json:"homeTeamName"`
	AwayTeamName string    `json:"awayTeamName"`
	KickoffAt    time.Time `json:"kickoffAt"`
	Stage        string    `json:"stage"`
	GroupLetter  string    `json:"groupLetter,omitempty"`
	HomeScore    *int      `json:"homeScore"`
	AwayScore    *int      `json:"awayScore"`
	IsCompleted  bool      `json:"isCompleted"`
}

// ListMatchesResponse wraps the list of matches.
type ListMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

// ToMatchResponse converts a domain.Match to MatchResponse.
func ToMatchResponse(match *domain.Match) MatchResponse {
	return MatchResponse{
		MatchID:      match.MatchID,
		HomeTeamID:   match.HomeTeamID,
		AwayTeamID:   match.AwayTeamID,
		HomeTeamName: match.HomeTeamName,
		AwayTeamName: match.AwayTeamName,
		KickoffAt:    match.KickoffAt,
		Stage:        string(match.Stage),
		GroupLetter:  match.GroupLetter,
		HomeScore:    match.HomeScore,
		AwayScore:    match.AwayScore,
		IsCompleted:  match.IsCompleted,
	}
}

// ToListMatchesResponse converts a slice of domain.Match to ListMatchesResponse.
func ToListMatchesResponse(matches []domain.Match) ListMatchesResponse {
	matchResponses := make([]MatchResponse, len(matches))
	for i := range matches {
		matchResponses[i] = ToMatchResponse(&matches[i])
	}
	return ListMatchesResponse{Matches: matchResponses}
}
