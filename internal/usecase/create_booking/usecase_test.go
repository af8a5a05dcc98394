package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	spotStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
	userStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/users"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/memtxmanager"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type env struct {
	userRepo    *userStorage.MemoryRepository
	spotRepo    *spotStorage.MemoryRepository
	bookingRepo *bookingStorage.MemoryRepository
	useCase     *UseCase
	userID      string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	userRepo := userStorage.NewMemoryRepository()
	spotRepo := spotStorage.NewMemoryRepository(spotStorage.SeedSpots())
	bookingRepo := bookingStorage.NewMemoryRepository()

	user, err := userRepo.Create(context.Background(), &domain.User{
		Username: "tenzin",
		Email:    "tenzin@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	uc := NewUseCase(bookingRepo, spotRepo, userRepo, memtxmanager.NewTransactionManager(), logger.Discard())
	uc.timeProvider = &fixedTime{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	return &env{
		userRepo:    userRepo,
		spotRepo:    spotRepo,
		bookingRepo: bookingRepo,
		useCase:     uc,
		userID:      user.ID,
	}
}

func validRequest(userID string) *Request {
	return &Request{
		UserID:                userID,
		ParkingSpotID:         "1",
		VehicleNumber:         "SK-01-A-1234",
		VehicleType:           "car",
		ExpectedDurationHours: 2,
	}
}

func TestUseCase_Execute(t *testing.T) {
	e := newEnv(t)

	resp, err := e.useCase.Execute(context.Background(), validRequest(e.userID))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.EndTime)
	assert.Nil(t, resp.TotalCost)

	// Начало сессии подставлено из провайдера времени
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), resp.StartTime)

	// Данные парковки денормализованы в бронирование
	assert.Equal(t, "MG Marg Central Parking", resp.SpotName)
	assert.InDelta(t, 40.0, resp.SpotHourlyRate, 0.001)

	// Счетчик мест уменьшился ровно на 1
	assert.Equal(t, 11, resp.SpotAvailableSpots)

	spot, err := e.spotRepo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 11, spot.AvailableSpots)
}

func TestUseCase_Execute_ExplicitStartTime(t *testing.T) {
	e := newEnv(t)

	start := time.Date(2026, 3, 9, 18, 30, 0, 0, time.UTC)
	req := validRequest(e.userID)
	req.StartTime = start

	resp, err := e.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, start, resp.StartTime)
}

func TestUseCase_Execute_SpotFull(t *testing.T) {
	e := newEnv(t)

	// Парковка "5" засеяна без свободных мест
	req := validRequest(e.userID)
	req.ParkingSpotID = "5"

	_, err := e.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpotFull)

	// Бронирование не должно быть записано
	bookings, listErr := e.bookingRepo.GetByUserID(context.Background(), e.userID, nil)
	require.NoError(t, listErr)
	assert.Empty(t, bookings)
}

func TestUseCase_Execute_LastSpotBecomesFull(t *testing.T) {
	e := newEnv(t)

	_, err := e.spotRepo.UpdateAvailability(context.Background(), "1", 1)
	require.NoError(t, err)

	resp, err := e.useCase.Execute(context.Background(), validRequest(e.userID))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SpotAvailableSpots)
	assert.Equal(t, "full", resp.SpotStatus)

	// Следующая попытка отклоняется
	_, err = e.useCase.Execute(context.Background(), validRequest(e.userID))
	assert.ErrorIs(t, err, ErrSpotFull)
}

func TestUseCase_Execute_UserNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.useCase.Execute(context.Background(), validRequest("missing"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUseCase_Execute_SpotNotFound(t *testing.T) {
	e := newEnv(t)

	req := validRequest(e.userID)
	req.ParkingSpotID = "missing"

	_, err := e.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"EmptyUserID", func(r *Request) { r.UserID = "" }},
		{"EmptySpotID", func(r *Request) { r.ParkingSpotID = "" }},
		{"EmptyVehicleNumber", func(r *Request) { r.VehicleNumber = "" }},
		{"EmptyVehicleType", func(r *Request) { r.VehicleType = "" }},
		{"ZeroDuration", func(r *Request) { r.ExpectedDurationHours = 0 }},
		{"DurationTooLong", func(r *Request) { r.ExpectedDurationHours = 200 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(e.userID)
			tt.mutate(req)

			_, err := e.useCase.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
