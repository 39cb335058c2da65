package types

import (
	"time"

	"github.com/google/uuid"
)

// SavedDestination is a recommendation a user chose to keep.
type SavedDestination struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Score       float64   `json:"score"`
	TravelType  string    `json:"travel_type"`
	Description string    `json:"description,omitempty"`
	IdealTime   string    `json:"ideal_time,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TravelHistoryEntry records a trip a user actually planned.
type TravelHistoryEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Destination string    `json:"destination"`
	TravelType  string    `json:"travel_type"`
	Budget      string    `json:"budget"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}
