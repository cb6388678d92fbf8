package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/integrations/mailer"
)

// SlotService интерфейс сервиса слотов
type SlotService interface {
	GetUpcoming(ctx context.Context, id int64) (*domain.Slot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Notifier интерфейс отправки подтверждений
type Notifier interface {
	Enabled() bool
	SendConfirmation(ctx context.Context, conf mailer.Confirmation) error
}

// Metrics интерфейс метрик бронирований и уведомлений
type Metrics interface {
	RecordReservationEvent(event string)
	RecordNotification(result string)
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
