package itinerary

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildItineraryDayCountAndDates(t *testing.T) {
	service := NewService(nil, slog.Default())

	days := service.BuildItinerary(context.Background(), "Paris", day("2024-06-01"), day("2024-06-03"))
	require.Len(t, days, 3)
	for i, d := range days {
		assert.Equal(t, i+1, d.DayIndex)
		assert.Equal(t, day("2024-06-01").AddDate(0, 0, i), d.Date)
		assert.Equal(t, "Paris", d.City)
		assert.NotEmpty(t, d.Morning)
		assert.NotEmpty(t, d.Afternoon)
		assert.NotEmpty(t, d.Evening)
		assert.NotEmpty(t, d.Highlights)
	}
}

func TestBuildItineraryArchetypeCycle(t *testing.T) {
	service := NewService(nil, slog.Default())

	days := service.BuildItinerary(context.Background(), "UnknownCity", day("2024-06-01"), day("2024-06-10"))
	require.Len(t, days, 10)

	// Day 8 repeats archetype 1, day 9 repeats archetype 2.
	assert.Equal(t, days[0].Morning, days[7].Morning)
	assert.Equal(t, days[0].Highlights, days[7].Highlights)
	assert.Equal(t, days[1].Morning, days[8].Morning)
	// Dates keep advancing even when content cycles.
	assert.Equal(t, day("2024-06-08"), days[7].Date)
}

func TestBuildItineraryEndBeforeStart(t *testing.T) {
	service := NewService(nil, slog.Default())

	days := service.BuildItinerary(context.Background(), "X", day("2024-06-05"), day("2024-06-01"))
	assert.Empty(t, days)
}

func TestBuildItinerarySingleDay(t *testing.T) {
	service := NewService(nil, slog.Default())

	days := service.BuildItinerary(context.Background(), "Lisbon", day("2024-06-01"), day("2024-06-01"))
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].DayIndex)
}

func TestBuildItineraryFromTemplates(t *testing.T) {
	templates := &dataset.ItineraryTable{Entries: []types.ItineraryTemplateEntry{
		{Destination: "Rome", Day: 1, Morning: "Colosseum", Afternoon: "Forum", Evening: "Trastevere"},
		{Destination: "", Day: 2, Morning: "Vatican", Afternoon: "Castel Sant'Angelo", Evening: "Opera"},
		{Destination: "Paris", Day: 1, Morning: "Louvre", Afternoon: "Seine walk", Evening: "Eiffel Tower"},
	}}
	service := NewService(templates, slog.Default())

	t.Run("TemplateBlockWins", func(t *testing.T) {
		days := service.BuildItinerary(context.Background(), "rome", day("2024-06-01"), day("2024-06-02"))
		require.Len(t, days, 2)
		assert.Equal(t, "Colosseum", days[0].Morning)
		assert.Equal(t, "Vatican", days[1].Morning)
	})

	t.Run("LongerTripCyclesThroughBlock", func(t *testing.T) {
		days := service.BuildItinerary(context.Background(), "Rome", day("2024-06-01"), day("2024-06-05"))
		require.Len(t, days, 5)
		// 2-day block cycles: days 3 and 5 repeat day 1's content.
		assert.Equal(t, "Colosseum", days[2].Morning)
		assert.Equal(t, "Vatican", days[3].Morning)
		assert.Equal(t, "Colosseum", days[4].Morning)
	})

	t.Run("UnmatchedCityFallsBackToArchetypes", func(t *testing.T) {
		days := service.BuildItinerary(context.Background(), "Tokyo", day("2024-06-01"), day("2024-06-02"))
		require.Len(t, days, 2)
		assert.Equal(t, dayArchetypes[0].Morning, days[0].Morning)
	})
}

func TestBasicPlanCycle(t *testing.T) {
	service := NewService(nil, slog.Default())

	days := service.basicPlan("Berlin", day("2024-06-01"), 9)
	require.Len(t, days, 9)
	assert.Equal(t, basicActivities[0], days[0].Plan)
	assert.Equal(t, basicActivities[0], days[7].Plan)
	assert.Equal(t, basicActivities[1], days[8].Plan)
	for _, d := range days {
		assert.Empty(t, d.Morning, "degraded plan carries only the Plan label")
	}
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 1, inclusiveDays(day("2024-06-01"), day("2024-06-01")))
	assert.Equal(t, 3, inclusiveDays(day("2024-06-01"), day("2024-06-03")))
	assert.Equal(t, -3, inclusiveDays(day("2024-06-05"), day("2024-06-01")))
	// Month boundary
	assert.Equal(t, 2, inclusiveDays(day("2024-06-30"), day("2024-07-01")))
}
