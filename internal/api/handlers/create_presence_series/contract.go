package create_presence_series

import (
	"context"

	createSeries "github.com/m04kA/SMC-PresenceBooking/internal/usecase/create_presence_series"
)

type CreatePresenceSeriesUseCase interface {
	Execute(ctx context.Context, req *createSeries.Request) (*createSeries.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
