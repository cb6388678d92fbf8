package admin_dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

type Handler struct {
	presences    PresenceService
	reservations ReservationService
	readTimeout  time.Duration
	healthPath   string
	logger       Logger
}

func NewHandler(
	presences PresenceService,
	reservations ReservationService,
	readTimeout time.Duration,
	healthPath string,
	logger Logger,
) *Handler {
	return &Handler{
		presences:    presences,
		reservations: reservations,
		readTimeout:  readTimeout,
		healthPath:   healthPath,
		logger:       logger,
	}
}

// Handle GET /api/v1/admin/dashboard
// Присутствия и бронирования читаются параллельно; если хранилище не ответило
// за readTimeout, отдается страница состояния вместо сводки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		presences    []*domain.PresenceWithCounts
		reservations []*domain.Reservation
	)

	err := handlers.BoundedRead(r.Context(), h.readTimeout,
		func(ctx context.Context) error {
			var err error
			presences, err = h.presences.ListWithCounts(ctx)
			return err
		},
		func(ctx context.Context) error {
			var err error
			reservations, err = h.reservations.List(ctx, domain.ReservationFilter{})
			return err
		},
	)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Storage unavailable: %v", err)
		handlers.RespondDegraded(w, h.healthPath)
		return
	}

	h.logger.Info("GET /admin/dashboard - Dashboard built: presences=%d, reservations=%d",
		len(presences), len(reservations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(presences, reservations))
}
