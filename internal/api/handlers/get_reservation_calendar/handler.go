package get_reservation_calendar

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/service/reservations"
	"github.com/m04kA/SMC-PresenceBooking/pkg/icsexport"
)

const msgNotFound = "бронирование не найдено"

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

// Handle GET /api/v1/reservations/{token}/calendar.ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	reservation, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{token}/calendar.ics - Reservation not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reservations/{token}/calendar.ics - Failed to get reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	body, err := icsexport.Render(ToEvent(reservation))
	if err != nil {
		h.logger.Error("GET /reservations/{token}/calendar.ics - Failed to render calendar: reservation_id=%d, error=%v",
			reservation.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", icsexport.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="reservation.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// ToEvent конвертирует бронирование в событие календаря
func ToEvent(r *domain.Reservation) icsexport.Event {
	return icsexport.Event{
		UID:         r.Token + "@presence-booking",
		Summary:     "Réservation - " + r.Location,
		Location:    r.Location,
		Description: fmt.Sprintf("%s %s, %d", r.FirstName, r.LastName, r.Quantity),
		Start:       r.SlotStartAt,
		End:         r.SlotStartAt.Add(domain.SlotDuration),
		Created:     r.CreatedAt,
	}
}
