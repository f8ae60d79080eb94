package domain

import "time"

// Prediction is a user's score prediction for a single match.
// At most one prediction exists per (user, match) pair.
type Prediction struct {
	PredictionID       string     `json:"predictionID"` // Primary Key (UUID)
	UserID             string     `json:"userID"`
	MatchID            string     `json:"matchID"`
	PredictedHomeScore int        `json:"predictedHomeScore"`
	PredictedAwayScore int        `json:"predictedAwayScore"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}
