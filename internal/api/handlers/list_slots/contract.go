package list_slots

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

type SlotService interface {
	ListUpcoming(ctx context.Context, date *types.Date, location *string) ([]*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
