package reservations

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Metrics интерфейс для метрик событий бронирования
type Metrics interface {
	RecordReservationEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
