package save_presence

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

// PresenceService интерфейс сервиса хранения присутствий
type PresenceService interface {
	CreateWithSlots(ctx context.Context, fields domain.PresenceFields) (*domain.Presence, int, error)
	UpdateWithRegeneration(ctx context.Context, id int64, fields domain.PresenceFields, confirm bool) (int, int, error)
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
