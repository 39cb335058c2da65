package itinerary

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-planner/internal/api"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

const dateLayout = "2006-01-02"

// maxItineraryDays caps the requested span at the boundary; the service
// itself only guards against non-positive spans.
const maxItineraryDays = 30

// ItineraryRequest is the expected JSON body for itinerary generation.
type ItineraryRequest struct {
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ItineraryResponse wraps a generated day-by-day plan.
type ItineraryResponse struct {
	City     string               `json:"city"`
	DayCount int                  `json:"day_count"`
	Days     []types.ItineraryDay `json:"days"`
}

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Build handles POST /itineraries.
func (h *Handler) Build(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Build")
	defer span.End()

	l := h.logger.With(slog.String("method", "Build"))
	start := time.Now()

	var req ItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.City == "" {
		span.SetStatus(codes.Error, "Missing city")
		api.ErrorResponse(w, r, http.StatusBadRequest, "city is required")
		return
	}
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		span.SetStatus(codes.Error, "Invalid start date")
		api.ErrorResponse(w, r, http.StatusBadRequest, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		span.SetStatus(codes.Error, "Invalid end date")
		api.ErrorResponse(w, r, http.StatusBadRequest, "end_date must be formatted as YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		span.SetStatus(codes.Error, "End date before start date")
		api.ErrorResponse(w, r, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}
	if daySpan := inclusiveDays(startDate, endDate); daySpan > maxItineraryDays {
		span.SetStatus(codes.Error, "Date span exceeds cap")
		api.ErrorResponse(w, r, http.StatusBadRequest,
			fmt.Sprintf("itinerary cannot exceed %d days, please select a shorter date range", maxItineraryDays))
		return
	}

	days := h.service.BuildItinerary(ctx, req.City, startDate, endDate)

	metrics.Get().ItineraryRequestsTotal.Add(ctx, 1)
	metrics.Get().ItineraryDurationSeconds.Record(ctx, time.Since(start).Seconds())

	l.InfoContext(ctx, "Itinerary returned", slog.String("city", req.City), slog.Int("days", len(days)))
	span.SetStatus(codes.Ok, "Itinerary returned")
	api.WriteJSONResponse(w, r, http.StatusOK, ItineraryResponse{
		City:     req.City,
		DayCount: len(days),
		Days:     days,
	})
}
