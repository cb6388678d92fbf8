package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный пароль"
)

type Handler struct {
	service AuthService
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service AuthService, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, expiresAt, err := h.service.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.cookie.Set(w, token, expiresAt)

	h.logger.Info("POST /admin/login - Admin session started, expires_at=%s", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{ExpiresAt: expiresAt})
}
