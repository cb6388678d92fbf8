package get_reservation_calendar

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

type ReservationService interface {
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
