package retention

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// PresencePurger удаляет присутствия (вместе со слотами и бронированиями) раньше даты
type PresencePurger interface {
	DeleteBefore(ctx context.Context, date types.Date) (int64, error)
}

// Metrics интерфейс метрик задачи
type Metrics interface {
	RecordPresenceEvent(event string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
