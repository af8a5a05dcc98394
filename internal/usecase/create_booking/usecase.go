package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
	userRepository "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
)

// UseCase use case создания бронирования.
// Последовательность: валидация -> проверка пользователя -> в сериализуемой
// транзакции: проверка наличия свободных мест, запись бронирования,
// уменьшение счетчика доступных мест ровно на 1.
type UseCase struct {
	bookingRepo  BookingRepository
	spotRepo     SpotRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spotRepo:     spotRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, spot=%s, vehicle=%s, duration=%dh",
		req.UserID, req.ParkingSpotID, req.VehicleNumber, req.ExpectedDurationHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что пользователь существует
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepository.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Начало сессии: переданное время или текущее
	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = uc.timeProvider.Now()
	}

	var (
		result    *domain.Booking
		spotAfter *domain.ParkingSpot
	)

	// 4. Бронирование и изменение счетчика мест - одна атомарная операция
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		spot, err := uc.spotRepo.GetByID(txCtx, req.ParkingSpotID)
		if err != nil {
			if errors.Is(err, spotRepository.ErrSpotNotFound) {
				uc.logger.Warn("CreateBooking: spot id=%s not found", req.ParkingSpotID)
				return ErrSpotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get spot id=%s: %v", req.ParkingSpotID, err)
			return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
		}

		// Предусловие: свободные места должны быть до записи бронирования
		if spot.IsFull() {
			uc.logger.Warn("CreateBooking: spot id=%s is full (0/%d)", spot.ID, spot.TotalSpots)
			return ErrSpotFull
		}

		booking := &domain.Booking{
			UserID:                req.UserID,
			ParkingSpotID:         req.ParkingSpotID,
			VehicleNumber:         req.VehicleNumber,
			VehicleType:           req.VehicleType,
			StartTime:             startTime,
			ExpectedDurationHours: req.ExpectedDurationHours,
			Status:                domain.StatusActive,
			// Денормализация данных парковки для истории
			SpotName:       spot.Name,
			SpotHourlyRate: spot.HourlyRate,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// Ровно -1 место за активное бронирование
		updated, err := uc.spotRepo.UpdateAvailability(txCtx, spot.ID, spot.AvailableSpots-1)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to update spot availability: %v", err)
			return fmt.Errorf("%w: failed to update spot availability: %v", ErrInternal, err)
		}

		result = created
		spotAfter = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, spot=%s available=%d/%d",
		result.ID, spotAfter.ID, spotAfter.AvailableSpots, spotAfter.TotalSpots)

	return &Response{
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
		SpotAvailableSpots:    spotAfter.AvailableSpots,
		SpotStatus:            string(spotAfter.Status),
		CreatedAt:             result.CreatedAt,
	}, nil
}
