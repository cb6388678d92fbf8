package cancel_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// ReservationService интерфейс сервиса чтения бронирований
type ReservationService interface {
	GetByToken(ctx context.Context, token string) (*domain.Reservation, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteByToken(ctx context.Context, token string) (int64, error)
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	RecordReservationEvent(event string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
