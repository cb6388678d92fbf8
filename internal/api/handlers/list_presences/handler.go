package list_presences

import (
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
)

// PresencesResponse HTTP response model
type PresencesResponse struct {
	Presences []handlers.Presence `json:"presences"`
}

type Handler struct {
	service PresenceService
	logger  Logger
}

func NewHandler(service PresenceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/presences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	presences, err := h.service.ListWithCounts(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/presences - Failed to list presences: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := PresencesResponse{Presences: make([]handlers.Presence, len(presences))}
	for i, p := range presences {
		resp.Presences[i] = handlers.FromPresenceWithCounts(p)
	}

	h.logger.Info("GET /admin/presences - Presences listed: count=%d", len(presences))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
