package save_presence

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
	savePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/save_presence"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPresenceID  = "некорректный ID присутствия"
	msgInvalidConfirm     = "некорректное значение confirm"
	msgNotFound           = "присутствие не найдено"
)

type Handler struct {
	useCase SavePresenceUseCase
	logger  Logger
}

func NewHandler(useCase SavePresenceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/presences
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req PresenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/presences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.save(w, r, "POST /admin/presences", req.ToUseCaseRequest(nil, false), http.StatusCreated)
}

// HandleUpdate PUT /api/v1/admin/presences/{presenceId}?confirm=true
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	presenceID, err := strconv.ParseInt(mux.Vars(r)["presenceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/presences/{id} - Invalid presence ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPresenceID)
		return
	}

	confirm, err := handlers.QueryBool(r, "confirm")
	if err != nil {
		h.logger.Warn("PUT /admin/presences/{id} - Invalid confirm flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfirm)
		return
	}

	var req PresenceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/presences/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.save(w, r, "PUT /admin/presences/{id}", req.ToUseCaseRequest(&presenceID, confirm), http.StatusOK)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, route string, req *savePresence.Request, okStatus int) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrValidationFailed):
			h.logger.Warn("%s - Validation failed: %v", route, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, savePresence.ErrPresenceNotFound):
			h.logger.Warn("%s - Presence not found", route)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("%s - Failed to save presence: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.ConfirmationRequired {
		h.logger.Warn("%s - Confirmation required: affected_reservations=%d", route, result.AffectedReservations)
		handlers.RespondConfirmationRequired(w, result.AffectedReservations)
		return
	}

	h.logger.Info("%s - Presence saved: presence_id=%d, slots=%d", route, result.Presence.ID, result.SlotCount)
	handlers.RespondJSON(w, okStatus, FromUseCaseResponse(result))
}
