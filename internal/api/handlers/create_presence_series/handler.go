package create_presence_series

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/validation"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	useCase CreatePresenceSeriesUseCase
	logger  Logger
}

func NewHandler(useCase CreatePresenceSeriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/presences/series
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SeriesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/presences/series - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrValidationFailed):
			h.logger.Warn("POST /admin/presences/series - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /admin/presences/series - Failed to create series: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/presences/series - Series created: presences=%d", len(result.Presences))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
