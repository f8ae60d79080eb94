package domain

import "time"

// Team represents a tournament team.
type Team struct {
	TeamID      string    `json:"teamID"` // Primary Key (UUID)
	Name        string    `json:"name"`
	GroupLetter string    `json:"groupLetter"` // "A".."H"
	FlagURL     string    `json:"flagURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
