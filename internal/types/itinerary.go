package types

import "time"

// ItineraryDay is one entry of a generated travel plan. DayIndex is 1-based
// and contiguous. Rich plans fill Morning/Afternoon/Evening/Highlights;
// the degraded plan fills only Plan.
type ItineraryDay struct {
	DayIndex   int       `json:"day"`
	Date       time.Time `json:"date"`
	City       string    `json:"city"`
	Plan       string    `json:"plan,omitempty"`
	Morning    string    `json:"morning,omitempty"`
	Afternoon  string    `json:"afternoon,omitempty"`
	Evening    string    `json:"evening,omitempty"`
	Highlights string    `json:"highlights,omitempty"`
}

// ItineraryTemplateEntry is one row of the optional pre-authored itinerary
// table. A row with a non-empty Destination starts a city block; rows with
// an empty Destination continue the preceding block.
type ItineraryTemplateEntry struct {
	Destination string `json:"destination"`
	Day         int    `json:"day"`
	Morning     string `json:"morning"`
	Afternoon   string `json:"afternoon"`
	Evening     string `json:"evening"`
}
