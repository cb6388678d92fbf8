package delete_presence

import (
	"context"

	deletePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/delete_presence"
)

type DeletePresenceUseCase interface {
	Execute(ctx context.Context, req *deletePresence.Request) (*deletePresence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
