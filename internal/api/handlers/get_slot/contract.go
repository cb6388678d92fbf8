package get_slot

import (
	"context"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
)

type SlotService interface {
	GetUpcoming(ctx context.Context, id int64) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
