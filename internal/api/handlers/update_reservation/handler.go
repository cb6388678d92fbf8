package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	updateReservation "github.com/m04kA/SMC-PresenceBooking/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgWindowClosed       = "слот уже начался, бронирование нельзя изменить"
	reasonWindowClosed    = "mutation_window_closed"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{token} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{token} - Reservation not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrMutationWindowClosed):
			h.logger.Warn("PUT /reservations/{token} - Mutation window closed")
			handlers.RespondConflict(w, msgWindowClosed, reasonWindowClosed)

		case errors.Is(err, validation.ErrValidationFailed):
			h.logger.Warn("PUT /reservations/{token} - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PUT /reservations/{token} - Failed to update reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{token} - Reservation updated: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
