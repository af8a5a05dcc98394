package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Выполняется до любых побочных эффектов: невалидный запрос не оставляет
// частичных изменений ни в бронированиях, ни в счетчиках парковок.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ParkingSpotID) == "" {
		return fmt.Errorf("%w: parkingSpotId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehicleNumber) == "" {
		return fmt.Errorf("%w: vehicleNumber is required", ErrInvalidInput)
	}
	if len(req.VehicleNumber) > domain.MaxVehicleNumberLength {
		return fmt.Errorf("%w: vehicleNumber exceeds %d characters", ErrInvalidInput, domain.MaxVehicleNumberLength)
	}

	if strings.TrimSpace(req.VehicleType) == "" {
		return fmt.Errorf("%w: vehicleType is required", ErrInvalidInput)
	}
	if len(req.VehicleType) > domain.MaxVehicleTypeLength {
		return fmt.Errorf("%w: vehicleType exceeds %d characters", ErrInvalidInput, domain.MaxVehicleTypeLength)
	}

	if req.ExpectedDurationHours < domain.MinExpectedDurationHours ||
		req.ExpectedDurationHours > domain.MaxExpectedDurationHours {
		return fmt.Errorf("%w: expectedDuration must be between %d and %d hours",
			ErrInvalidInput, domain.MinExpectedDurationHours, domain.MaxExpectedDurationHours)
	}

	return nil
}
