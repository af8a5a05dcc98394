package complete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	spotRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

// UseCase use case завершения бронирования.
// Последовательность: в сериализуемой транзакции: проверка статуса
// бронирования, расчет стоимости, перевод в completed, возврат места
// на парковку ровно на 1.
type UseCase struct {
	bookingRepo  BookingRepository
	spotRepo     SpotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	pricingOpts  *pricing.Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// pricingOpts может быть nil, тогда применяются дефолты пакета pricing.
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	txManager TransactionManager,
	pricingOpts *pricing.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spotRepo:     spotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		pricingOpts:  pricingOpts,
		logger:       logger,
	}
}

// Execute выполняет use case завершения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteBooking: booking=%s", req.BookingID)

	if req.BookingID == "" {
		uc.logger.Warn("CompleteBooking: empty booking id")
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if req.TotalCost != nil && *req.TotalCost < 0 {
		uc.logger.Warn("CompleteBooking: negative total cost %.2f", *req.TotalCost)
		return nil, fmt.Errorf("%w: total cost must not be negative", ErrInvalidInput)
	}

	var (
		result    *domain.Booking
		spotAfter *domain.ParkingSpot
		quote     *pricing.Quote
	)

	// Завершение и возврат места - одна атомарная операция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepository.ErrBookingNotFound) {
				uc.logger.Warn("CompleteBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CompleteBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Повторное завершение и завершение отмененного запрещены
		if !booking.CanBeCompleted() {
			uc.logger.Warn("CompleteBooking: booking id=%s is %s, not active", booking.ID, booking.Status)
			return ErrBookingNotActive
		}

		endTime := uc.timeProvider.Now()
		if req.EndTime != nil {
			endTime = *req.EndTime
		}

		totalCost := 0.0
		if req.TotalCost != nil {
			totalCost = pricing.Round2(*req.TotalCost)
		} else {
			// Стоимость по фактической длительности сессии
			hours := endTime.Sub(booking.StartTime).Hours()
			if hours < 0 {
				hours = 0
			}
			q := pricing.Calculate(booking.SpotHourlyRate, hours, uc.pricingOpts)
			quote = &q
			totalCost = pricing.Round2(q.Total)
		}

		if err := uc.bookingRepo.Complete(txCtx, booking.ID, endTime, totalCost); err != nil {
			uc.logger.Error("CompleteBooking: failed to complete booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to complete booking: %v", ErrInternal, err)
		}

		spot, err := uc.spotRepo.GetByID(txCtx, booking.ParkingSpotID)
		if err != nil {
			if errors.Is(err, spotRepository.ErrSpotNotFound) {
				// Парковка могла быть удалена; завершение бронирования важнее
				uc.logger.Warn("CompleteBooking: spot id=%s not found, skipping availability update", booking.ParkingSpotID)
			} else {
				uc.logger.Error("CompleteBooking: failed to get spot id=%s: %v", booking.ParkingSpotID, err)
				return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
			}
		} else {
			// Ровно +1 место за завершенное бронирование
			updated, err := uc.spotRepo.UpdateAvailability(txCtx, spot.ID, spot.AvailableSpots+1)
			if err != nil {
				uc.logger.Error("CompleteBooking: failed to update spot availability: %v", err)
				return fmt.Errorf("%w: failed to update spot availability: %v", ErrInternal, err)
			}
			spotAfter = updated
		}

		completed, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("CompleteBooking: failed to reload booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = completed
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteBooking: successfully completed booking id=%s, total=%.2f",
		result.ID, derefFloat(result.TotalCost))

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

	if quote != nil {
		resp.Subtotal = pricing.Round2(quote.Subtotal)
		resp.ServiceFee = quote.ServiceFee
		resp.GST = pricing.Round2(quote.GST)
	}

	if spotAfter != nil {
		resp.SpotAvailableSpots = spotAfter.AvailableSpots
		resp.SpotStatus = string(spotAfter.Status)
	}

	return resp, nil
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
