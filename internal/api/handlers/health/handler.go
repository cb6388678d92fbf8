package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// StatusResponse ответ проверки живости
type StatusResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /healthz - Storage unavailable: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, StatusResponse{Status: "degraded", Storage: "unavailable"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Status: "ok", Storage: "ok"})
}
