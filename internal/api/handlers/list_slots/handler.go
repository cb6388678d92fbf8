package list_slots

import (
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (YYYY-MM-DD), location (подстрока) - опционально
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, location, err := ParseFilter(r.URL.Query().Get("date"), r.URL.Query().Get("location"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid filter: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	slots, err := h.service.ListUpcoming(r.Context(), date, location)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots listed: count=%d", len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromSlots(slots))
}
