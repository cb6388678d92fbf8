package save_presence

import (
	"context"

	savePresence "github.com/m04kA/SMC-PresenceBooking/internal/usecase/save_presence"
)

type SavePresenceUseCase interface {
	Execute(ctx context.Context, req *savePresence.Request) (*savePresence.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
