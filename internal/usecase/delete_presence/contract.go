package delete_presence

import "context"

// PresenceService интерфейс сервиса хранения присутствий
type PresenceService interface {
	Delete(ctx context.Context, id int64, confirm bool) (int, error)
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
