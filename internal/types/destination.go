package types

// CityRecord is one row of the city dataset. The table is loaded once at
// startup and treated as read-only afterwards; scoring passes work on
// per-request derived slices, never on the shared records.
type CityRecord struct {
	City             string             `json:"city"`
	Country          string             `json:"country"`
	Region           string             `json:"region,omitempty"`
	BudgetLevel      string             `json:"budget_level,omitempty"`
	ShortDescription string             `json:"short_description,omitempty"`
	ModelScore       float64            `json:"model_score"`
	Affinities       map[string]float64 `json:"affinities,omitempty"`
}

// RankedDestination is the ephemeral output of one recommendation call.
// The recommendation service does not persist it; callers may save it
// through the trips API.
type RankedDestination struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	FinalScore  float64 `json:"final_score"`
	Description string  `json:"description"`
	IdealTime   string  `json:"ideal_time"`
}
