package assistant

import (
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-planner/internal/api"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
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

// Chat handles POST /assistant/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AssistantHandler").Start(r.Context(), "Chat")
	defer span.End()

	l := h.logger.With(slog.String("method", "Chat"))

	var req ChatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		span.SetStatus(codes.Error, "Empty message")
		api.ErrorResponse(w, r, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.service.Reply(ctx, req.Message)

	span.SetStatus(codes.Ok, "Reply returned")
	api.WriteJSONResponse(w, r, http.StatusOK, ChatResponse{Reply: reply})
}
