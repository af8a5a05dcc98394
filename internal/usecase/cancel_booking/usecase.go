package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	spotRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
)

// UseCase use case отмены бронирования.
// Отменить можно только активное бронирование; место возвращается на
// парковку, стоимость не рассчитывается.
type UseCase struct {
	bookingRepo BookingRepository
	spotRepo    SpotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%s", req.BookingID)

	if req.BookingID == "" {
		uc.logger.Warn("CancelBooking: empty booking id")
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	var (
		result    *domain.Booking
		spotAfter *domain.ParkingSpot
	)

	// Отмена и возврат места - одна атомарная операция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepository.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: booking id=%s is %s, not active", booking.ID, booking.Status)
			return ErrBookingNotActive
		}

		if err := uc.bookingRepo.Cancel(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		spot, err := uc.spotRepo.GetByID(txCtx, booking.ParkingSpotID)
		if err != nil {
			if errors.Is(err, spotRepository.ErrSpotNotFound) {
				uc.logger.Warn("CancelBooking: spot id=%s not found, skipping availability update", booking.ParkingSpotID)
			} else {
				uc.logger.Error("CancelBooking: failed to get spot id=%s: %v", booking.ParkingSpotID, err)
				return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
			}
		} else {
			// Ровно +1 место за отмененное бронирование
			updated, err := uc.spotRepo.UpdateAvailability(txCtx, spot.ID, spot.AvailableSpots+1)
			if err != nil {
				uc.logger.Error("CancelBooking: failed to update spot availability: %v", err)
				return fmt.Errorf("%w: failed to update spot availability: %v", ErrInternal, err)
			}
			spotAfter = updated
		}

		cancelled, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to reload booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = cancelled
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%s", result.ID)

	resp := &Response{
		ID:                    result.ID,
		UserID:                result.UserID,
		ParkingSpotID:         result.ParkingSpotID,
		VehicleNumber:         result.VehicleNumber,
		VehicleType:           result.VehicleType,
		StartTime:             result.StartTime,
		EndTime:               result.EndTime,
		ExpectedDurationHours: result.ExpectedDurationHours,
		TotalCost:             result.TotalCost,
		Status:                string(result.Status),
		SpotName:              result.SpotName,
		SpotHourlyRate:        result.SpotHourlyRate,
		CreatedAt:             result.CreatedAt,
	}

	if spotAfter != nil {
		resp.SpotAvailableSpots = spotAfter.AvailableSpots
		resp.SpotStatus = string(spotAfter.Status)
	}

	return resp, nil
}
