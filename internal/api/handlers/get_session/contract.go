package get_session

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type BookingsService interface {
	GetDomainByID(ctx context.Context, id string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
