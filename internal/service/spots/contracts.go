package spots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория парковок
type SpotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ParkingSpot, error)
	List(ctx context.Context) ([]*domain.ParkingSpot, error)
	Search(ctx context.Context, text string) ([]*domain.ParkingSpot, error)
	UpdateAvailability(ctx context.Context, id string, count int) (*domain.ParkingSpot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
