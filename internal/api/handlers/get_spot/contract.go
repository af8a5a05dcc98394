package get_spot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type SpotsService interface {
	Get(ctx context.Context, id string) (*domain.ParkingSpot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
