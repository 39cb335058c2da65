package trips

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	appMiddleware "github.com/FACorreiaa/go-travel-planner/app/middleware"
	"github.com/FACorreiaa/go-travel-planner/internal/api"
	"github.com/FACorreiaa/go-travel-planner/internal/types"
)

const dateLayout = "2006-01-02"

type SaveDestinationRequest struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Score       float64 `json:"score"`
	TravelType  string  `json:"travel_type"`
	Description string  `json:"description,omitempty"`
	IdealTime   string  `json:"ideal_time,omitempty"`
}

type AddTravelHistoryRequest struct {
	Destination string `json:"destination"`
	TravelType  string `json:"travel_type"`
	Budget      string `json:"budget"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type CreatedResponse struct {
	ID string `json:"id"`
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

// userIDFromRequest pulls the authenticated user out of the request context.
func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	raw, ok := appMiddleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// SaveDestination handles POST /trips/destinations.
func (h *Handler) SaveDestination(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "SaveDestination")
	defer span.End()

	l := h.logger.With(slog.String("method", "SaveDestination"))

	userID, ok := userIDFromRequest(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SaveDestinationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.service.SaveDestination(ctx, &types.SavedDestination{
		UserID:      userID,
		City:        req.City,
		Country:     req.Country,
		Score:       req.Score,
		TravelType:  req.TravelType,
		Description: req.Description,
		IdealTime:   req.IdealTime,
	})
	if err != nil {
		span.RecordError(err)
		var valErr *types.ValidationError
		if errors.As(err, &valErr) {
			api.ErrorResponse(w, r, http.StatusBadRequest, valErr.Message)
			return
		}
		l.ErrorContext(ctx, "Failed to save destination", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to save destination")
		return
	}

	span.SetStatus(codes.Ok, "Destination saved")
	api.WriteJSONResponse(w, r, http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListSavedDestinations handles GET /trips/destinations.
func (h *Handler) ListSavedDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "ListSavedDestinations")
	defer span.End()

	l := h.logger.With(slog.String("method", "ListSavedDestinations"))

	userID, ok := userIDFromRequest(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	dests, err := h.service.GetSavedDestinations(ctx, userID)
	if err != nil {
		span.RecordError(err)
		l.ErrorContext(ctx, "Failed to list saved destinations", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to list saved destinations")
		return
	}
	if dests == nil {
		dests = []types.SavedDestination{}
	}

	span.SetStatus(codes.Ok, "Saved destinations returned")
	api.WriteJSONResponse(w, r, http.StatusOK, dests)
}

// DeleteSavedDestination handles DELETE /trips/destinations/{destinationID}.
func (h *Handler) DeleteSavedDestination(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "DeleteSavedDestination")
	defer span.End()

	l := h.logger.With(slog.String("method", "DeleteSavedDestination"))

	userID, ok := userIDFromRequest(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	destinationID, err := uuid.Parse(chi.URLParam(r, "destinationID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid destination id")
		return
	}

	if err := h.service.DeleteSavedDestination(ctx, userID, destinationID); err != nil {
		span.RecordError(err)
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "saved destination not found")
			return
		}
		l.ErrorContext(ctx, "Failed to delete saved destination", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to delete saved destination")
		return
	}

	span.SetStatus(codes.Ok, "Saved destination deleted")
	w.WriteHeader(http.StatusNoContent)
}

// AddTravelHistory handles POST /trips/history.
func (h *Handler) AddTravelHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "AddTravelHistory")
	defer span.End()

	l := h.logger.With(slog.String("method", "AddTravelHistory"))

	userID, ok := userIDFromRequest(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req AddTravelHistoryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "start_date must be formatted as YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "end_date must be formatted as YYYY-MM-DD")
		return
	}

	id, err := h.service.AddTravelHistory(ctx, &types.TravelHistoryEntry{
		UserID:      userID,
		Destination: req.Destination,
		TravelType:  req.TravelType,
		Budget:      req.Budget,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		span.RecordError(err)
		var valErr *types.ValidationError
		if errors.As(err, &valErr) {
			api.ErrorResponse(w, r, http.StatusBadRequest, valErr.Message)
			return
		}
		l.ErrorContext(ctx, "Failed to add travel history", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to add travel history")
		return
	}

	span.SetStatus(codes.Ok, "Travel history recorded")
	api.WriteJSONResponse(w, r, http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListTravelHistory handles GET /trips/history.
func (h *Handler) ListTravelHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripsHandler").Start(r.Context(), "ListTravelHistory")
	defer span.End()

	l := h.logger.With(slog.String("method", "ListTravelHistory"))

	userID, ok := userIDFromRequest(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	entries, err := h.service.GetTravelHistory(ctx, userID)
	if err != nil {
		span.RecordError(err)
		l.ErrorContext(ctx, "Failed to list travel history", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to list travel history")
		return
	}
	if entries == nil {
		entries = []types.TravelHistoryEntry{}
	}

	span.SetStatus(codes.Ok, "Travel history returned")
	api.WriteJSONResponse(w, r, http.StatusOK, entries)
}
