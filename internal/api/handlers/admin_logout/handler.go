package admin_logout

import (
	"net/http"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
)

type Handler struct {
	cookie handlers.SessionCookie
	logger Logger
}

func NewHandler(cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		cookie: cookie,
		logger: logger,
	}
}

// Handle POST /api/v1/admin/logout
// Сессия без состояния: достаточно удалить cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	h.logger.Info("POST /admin/logout - Admin session closed")
	handlers.RespondNoContent(w)
}
