package dto

import (
	"time"

	"github.com/fifabets/fifa_betting_app/internal/core/domain"
)

// CreateBetRequest is the body of POST /api/bets.
type CreateBetRequest struct {
	Stage          string `json:"stage" binding:"required,oneof=Winner RunnerUp"`
	SelectedTeamID string `json:"selectedTeamID" binding:"required,uuid"`
}

// UpdateBetRequest is the body of PUT /api/bets/:betID. Only the picked team
// can change; the stage is fixed at creation.
type UpdateBetRequest struct {
	SelectedTeamID string `json:"selectedTeamID" binding:"required,uuid"`
}

// BetResponse is the public view of a bet.
type BetResponse struct {
	BetID          string     `json:"betID"`
	Stage          string     `json:"stage"`
	SelectedTeamID string     `json:"selectedTeamID"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// ListBetsResponse wraps the caller's bets.
type ListBetsResponse struct {
	Bets []BetResponse `json:"bets"`
}

// ToBetResponse converts a domain.Bet to BetResponse.
func ToBetResponse(bet *domain.Bet) BetResponse {
	return BetResponse{
		BetID:          bet.BetID,
		Stage:          string(bet.Stage),
		SelectedTeamID: bet.SelectedTeamID,
		CreatedAt:      bet.CreatedAt,
		UpdatedAt:      bet.UpdatedAt,
	}
}

// ToListBetsResponse converts a slice of domain.Bet to ListBetsResponse.
func ToListBetsResponse(bets []domain.Bet) ListBetsResponse {
	responses := make([]BetResponse, len(bets))
	for i := range bets {
		responses[i] = ToBetResponse(&bets[i])
	}
	return ListBetsResponse{Bets: responses}
}
