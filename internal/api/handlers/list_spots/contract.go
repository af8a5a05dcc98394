package list_spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type SpotsService interface {
	List(ctx context.Context) ([]*domain.ParkingSpot, error)
	Search(ctx context.Context, text string) ([]*domain.ParkingSpot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
