package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/cancel_reservation"
)

const (
	msgNotFound        = "бронирование не найдено"
	msgWindowClosed    = "слот уже начался, бронирование нельзя отменить"
	reasonWindowClosed = "mutation_window_closed"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	err := h.useCase.Execute(r.Context(), &cancelReservation.Request{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{token} - Reservation not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrMutationWindowClosed):
			h.logger.Warn("DELETE /reservations/{token} - Mutation window closed")
			handlers.RespondConflict(w, msgWindowClosed, reasonWindowClosed)

		default:
			h.logger.Error("DELETE /reservations/{token} - Failed to cancel reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{token} - Reservation cancelled")
	handlers.RespondNoContent(w)
}
