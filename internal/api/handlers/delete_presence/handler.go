package delete_presence

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	deletePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/delete_presence"
)

const (
	msgInvalidPresenceID = "некорректный ID присутствия"
	msgInvalidConfirm    = "некорректное значение confirm"
	msgNotFound          = "присутствие не найдено"
)

type Handler struct {
	useCase DeletePresenceUseCase
	logger  Logger
}

func NewHandler(useCase DeletePresenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/presences/{presenceId}?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	presenceID, err := strconv.ParseInt(mux.Vars(r)["presenceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/presences/{id} - Invalid presence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPresenceID)
		return
	}

	confirm, err := handlers.QueryBool(r, "confirm")
	if err != nil {
		h.logger.Warn("DELETE /admin/presences/{id} - Invalid confirm flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfirm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deletePresence.Request{ID: presenceID, Confirm: confirm})
	if err != nil {
		switch {
		case errors.Is(err, deletePresence.ErrPresenceNotFound):
			h.logger.Warn("DELETE /admin/presences/{id} - Presence not found: presence_id=%d", presenceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/presences/{id} - Failed to delete presence: presence_id=%d, error=%v",
				presenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.ConfirmationRequired {
		h.logger.Warn("DELETE /admin/presences/{id} - Confirmation required: presence_id=%d, affected_reservations=%d",
			presenceID, result.AffectedReservations)
		handlers.RespondConfirmationRequired(w, result.AffectedReservations)
		return
	}

	h.logger.Info("DELETE /admin/presences/{id} - Presence deleted: presence_id=%d, reservations_removed=%d",
		presenceID, result.AffectedReservations)
	handlers.RespondNoContent(w)
}
