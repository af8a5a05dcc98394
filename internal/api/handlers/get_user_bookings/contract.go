package get_user_bookings

import (
	"context"

	bookingModels "github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, req *bookingModels.GetUserBookingsRequest) ([]bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
