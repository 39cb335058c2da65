package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for itinerary generation.
type Service interface {
	BuildItinerary(ctx context.Context, city string, startDate, endDate time.Time) []types.ItineraryDay
}

// ServiceImpl synthesizes day-by-day plans. It is a pure function of its
// inputs plus the optionally injected template table; it holds no mutable
// state.
type ServiceImpl struct {
	logger    *slog.Logger
	templates *dataset.ItineraryTable // optional, nil when no template table is loaded
}

// NewService creates a new itinerary service instance.
func NewService(templates *dataset.ItineraryTable, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		templates: templates,
	}
}

// BuildItinerary produces one ItineraryDay per calendar day between
// startDate and endDate inclusive, in ascending date order with contiguous
// 1-based day indexes. Callers validate date ordering and the 30-day cap;
// this guard only turns non-positive spans into an empty plan. A failure
// in rich generation degrades to the basic single-field plan rather than
// erroring.
func (s *ServiceImpl) BuildItinerary(ctx context.Context, city string, startDate, endDate time.Time) []types.ItineraryDay {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "BuildItinerary", trace.WithAttributes(
		attribute.String("itinerary.city", city),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "BuildItinerary"), slog.String("city", city))

	dayCount := inclusiveDays(startDate, endDate)
	if dayCount <= 0 {
		l.WarnContext(ctx, "Non-positive day count, returning empty itinerary",
			slog.Int("day_count", dayCount))
		span.SetStatus(codes.Ok, "Empty itinerary")
		return []types.ItineraryDay{}
	}
	span.SetAttributes(attribute.Int("itinerary.days", dayCount))

	days, err := s.richPlan(city, startDate, dayCount)
	if err != nil {
		l.WarnContext(ctx, "Rich itinerary generation failed, degrading to basic plan",
			slog.Any("error", err))
		span.RecordError(err)
		days = s.basicPlan(city, startDate, dayCount)
	}

	l.InfoContext(ctx, "Itinerary generated", slog.Int("days", len(days)))
	span.SetStatus(codes.Ok, "Itinerary generated")
	return days
}

// inclusiveDays counts calendar days between two dates, both ends included.
func inclusiveDays(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	return int(end.Sub(start).Hours()/24) + 1
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// richPlan prefers the pre-authored template block for the city and falls
// back to the built-in archetypes when no block matches.
func (s *ServiceImpl) richPlan(city string, start time.Time, dayCount int) ([]types.ItineraryDay, error) {
	if block := s.templates.DaysFor(city); len(block) > 0 {
		return s.fromTemplates(city, start, dayCount, block), nil
	}
	if len(dayArchetypes) == 0 {
		return nil, fmt.Errorf("no built-in day archetypes available")
	}
	return s.fromArchetypes(city, start, dayCount), nil
}

// fromTemplates builds the plan from a matched template block. Trips longer
// than the block cycle through it modulo its length instead of truncating.
func (s *ServiceImpl) fromTemplates(city string, start time.Time, dayCount int, block []types.ItineraryTemplateEntry) []types.ItineraryDay {
	days := make([]types.ItineraryDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		entry := block[i%len(block)]
		days = append(days, types.ItineraryDay{
			DayIndex:   i + 1,
			Date:       start.AddDate(0, 0, i),
			City:       city,
			Morning:    entry.Morning,
			Afternoon:  entry.Afternoon,
			Evening:    entry.Evening,
			Highlights: fmt.Sprintf("Hand-picked plan for %s", city),
		})
	}
	return days
}

func (s *ServiceImpl) fromArchetypes(city string, start time.Time, dayCount int) []types.ItineraryDay {
	days := make([]types.ItineraryDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		arch := dayArchetypes[i%len(dayArchetypes)]
		days = append(days, types.ItineraryDay{
			DayIndex:   i + 1,
			Date:       start.AddDate(0, 0, i),
			City:       city,
			Morning:    arch.Morning,
			Afternoon:  arch.Afternoon,
			Evening:    arch.Evening,
			Highlights: arch.Highlights,
		})
	}
	return days
}

// basicPlan is the ultimate fallback: one generic activity label per day.
func (s *ServiceImpl) basicPlan(city string, start time.Time, dayCount int) []types.ItineraryDay {
	days := make([]types.ItineraryDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		days = append(days, types.ItineraryDay{
			DayIndex: i + 1,
			Date:     start.AddDate(0, 0, i),
			City:     city,
			Plan:     basicActivities[i%len(basicActivities)],
		})
	}
	return days
}
