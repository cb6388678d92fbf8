package list_presences

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

type PresenceService interface {
	ListWithCounts(ctx context.Context) ([]*domain.PresenceWithCounts, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
