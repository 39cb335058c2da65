package recommendation

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-planner/internal/api"
	"github.com/FACorreiaa/go-travel-planner/internal/dataset"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

// RecommendRequest is the expected JSON body for a recommendation call.
type RecommendRequest struct {
	TravelType  string `json:"travel_type"`
	BudgetLevel string `json:"budget_level"`
	TopN        int    `json:"top_n,omitempty"`
}

// RecommendResponse wraps the ranked destinations.
type RecommendResponse struct {
	Results []types.RankedDestination `json:"results"`
	Count   int                       `json:"count"`
}

// TravelTypesResponse lists the supported travel types and budget tiers.
type TravelTypesResponse struct {
	TravelTypes  []string `json:"travel_types"`
	BudgetLevels []string `json:"budget_levels"`
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

// Recommend handles POST /recommendations.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "Recommend")
	defer span.End()

	l := h.logger.With(slog.String("method", "Recommend"))
	start := time.Now()

	var req RecommendRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.service.Recommend(ctx, req.TravelType, req.BudgetLevel, req.TopN)
	if err != nil {
		var valErr *types.ValidationError
		if errors.As(err, &valErr) {
			l.WarnContext(ctx, "Validation failed", slog.Any("error", err))
			span.SetStatus(codes.Error, "Validation failed")
			api.ErrorResponse(w, r, http.StatusBadRequest, valErr.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to compute recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to compute recommendations")
		return
	}

	metrics.Get().RecommendationRequestsTotal.Add(ctx, 1)
	metrics.Get().RecommendationDurationSeconds.Record(ctx, time.Since(start).Seconds())

	span.SetStatus(codes.Ok, "Recommendations returned")
	api.WriteJSONResponse(w, r, http.StatusOK, RecommendResponse{Results: results, Count: len(results)})
}

// TravelTypes handles GET /travel-types.
func (h *Handler) TravelTypes(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, TravelTypesResponse{
		TravelTypes:  dataset.SupportedTravelTypes,
		BudgetLevels: dataset.BudgetTiers,
	})
}
