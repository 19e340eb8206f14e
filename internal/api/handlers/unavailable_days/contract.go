package unavailable_days

import (
	"context"

	unavailableDays "github.com/m04kA/SMC-SalonBooking/internal/usecase/unavailable_days"
)

type UnavailableDaysUseCase interface {
	Execute(ctx context.Context, req *unavailableDays.Request) (*unavailableDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
