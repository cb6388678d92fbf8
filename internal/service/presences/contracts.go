package presences

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

// PresenceRepository интерфейс репозитория присутствий
type PresenceRepository interface {
	Create(ctx context.Context, p *domain.Presence) (*domain.Presence, error)
	GetByID(ctx context.Context, id int64) (*domain.Presence, error)
	Update(ctx context.Context, id int64, fields domain.PresenceFields) error
	Delete(ctx context.Context, id int64) error
	DeleteBefore(ctx context.Context, date types.Date) (int64, error)
	CountReservations(ctx context.Context, id int64) (int, error)
	ListWithCounts(ctx context.Context) ([]*domain.PresenceWithCounts, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CreateForPresence(ctx context.Context, presenceID int64, starts []time.Time) (int64, error)
	DeleteByPresence(ctx context.Context, presenceID int64) (int64, error)
	LockByPresence(ctx context.Context, presenceID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
