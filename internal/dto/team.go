package dto

import (
	"time"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// TeamResponse is the public view of a team.
type TeamResponse struct {
	TeamID      string    `json:"teamID"`
	Name        string    `json:"name"`
	GroupLetter string    `json:"groupLetter"`
	FlagURL     string    `json:"flagURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListTeamsResponse wraps the list of teams.
type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ToTeamResponse converts a domain.Team to TeamResponse.
func ToTeamResponse(team *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:      team.TeamID,
		Name:        team.Name,
		GroupLetter: team.GroupLetter,
		FlagURL:     team.FlagURL,
		CreatedAt:   team.CreatedAt,
	}
}

// ToListTeamsResponse converts a slice of domain.Team to ListTeamsResponse.
func ToListTeamsResponse(teams []domain.Team) ListTeamsResponse {
	teamResponses := make([]TeamResponse, len(teams))
	for i := range teams {
		teamResponses[i] = ToTeamResponse(&teams[i])
	}
	return ListTeamsResponse{Teams: teamResponses}
}
