package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Query params: date, location, limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid parameters: %v", err)
		handlers.RespondValidationError(w, err)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ReservationsResponse{
		Reservations: make([]handlers.Reservation, len(list)),
		Offset:       filter.Offset,
	}
	for i, res := range list {
		resp.Reservations[i] = handlers.FromReservation(res)
	}

	h.logger.Info("GET /admin/reservations - Reservations listed: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
