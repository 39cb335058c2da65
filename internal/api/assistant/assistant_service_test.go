package assistant

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	service := NewService(slog.Default())
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"Destination", "What destination should I pick?", "Go to Destinations and select your travel type and budget."},
		{"PlaceSynonym", "any nice PLACE to visit?", "Go to Destinations and select your travel type and budget."},
		{"Food", "where can I find good food", "Open the Food page to explore local cuisines."},
		{"Transport", "how does transport work there", "Check the Transport page for metro, bus and taxi options."},
		{"Itinerary", "build me an itinerary please", "Use the Destinations page to generate your travel itinerary."},
		{"Budget", "I have a tight budget", "Select your budget while choosing destinations."},
		{"Currency", "currency exchange rates?", "Use the Currency Converter page to convert between different currencies with real-time exchange rates."},
		{"Weather", "what's the weather like", "Use the Weather page to check current weather conditions and forecasts for any city worldwide."},
		{"Default", "tell me a joke", defaultReply},
		{"RuleOrderDestinationBeatsBudget", "destination on a budget", "Go to Destinations and select your travel type and budget."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.Reply(ctx, tc.message))
		})
	}
}
