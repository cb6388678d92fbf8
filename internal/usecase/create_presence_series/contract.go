package create_presence_series

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// PresenceService интерфейс сервиса хранения присутствий
type PresenceService interface {
	CreateSeries(ctx context.Context, series []domain.PresenceFields) ([]*domain.Presence, error)
}

// Metrics интерфейс метрик присутствий
type Metrics interface {
	RecordPresenceEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
