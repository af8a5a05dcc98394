package complete_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/bookings"
	spotStorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/memtxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

var sessionStart = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type env struct {
	spotRepo    *spotStorage.MemoryRepository
	bookingRepo *bookingStorage.MemoryRepository
	useCase     *UseCase
	bookingID   string
}

// newEnv готовит активное бронирование на парковке "1" (тариф 40/час),
// занимающее одно из мест: 12 свободных в сиде, 11 после бронирования.
func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	spotRepo := spotStorage.NewMemoryRepository(spotStorage.SeedSpots())
	bookingRepo := bookingStorage.NewMemoryRepository()

	booking, err := bookingRepo.Create(ctx, &domain.Booking{
		UserID:                "u1",
		ParkingSpotID:         "1",
		VehicleNumber:         "SK-01-A-1234",
		VehicleType:           "car",
		StartTime:             sessionStart,
		ExpectedDurationHours: 2,
		Status:                domain.StatusActive,
		SpotName:              "MG Marg Central Parking",
		SpotHourlyRate:        40.00,
	})
	require.NoError(t, err)

	_, err = spotRepo.UpdateAvailability(ctx, "1", 11)
	require.NoError(t, err)

	uc := NewUseCase(bookingRepo, spotRepo, memtxmanager.NewTransactionManager(), nil, logger.Discard())
	uc.timeProvider = &fixedTime{now: sessionStart.Add(2 * time.Hour)}

	return &env{
		spotRepo:    spotRepo,
		bookingRepo: bookingRepo,
		useCase:     uc,
		bookingID:   booking.ID,
	}
}

func TestUseCase_Execute_ServerSideCost(t *testing.T) {
	e := newEnv(t)

	resp, err := e.useCase.Execute(context.Background(), &Request{BookingID: e.bookingID})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.EndTime)
	assert.True(t, resp.EndTime.Equal(sessionStart.Add(2*time.Hour)))

	// 2 часа по 40/час: 80 + 5 сбора + 18% GST от 85 = 100.30
	require.NotNil(t, resp.TotalCost)
	assert.InDelta(t, 100.30, *resp.TotalCost, 0.001)
	assert.InDelta(t, 80.0, resp.Subtotal, 0.001)
	assert.InDelta(t, 5.0, resp.ServiceFee, 0.001)
	assert.InDelta(t, 15.30, resp.GST, 0.001)

	// Место вернулось на парковку
	assert.Equal(t, 12, resp.SpotAvailableSpots)
}

func TestUseCase_Execute_SuppliedCostAndEndTime(t *testing.T) {
	e := newEnv(t)

	end := sessionStart.Add(3 * time.Hour)
	resp, err := e.useCase.Execute(context.Background(), &Request{
		BookingID: e.bookingID,
		EndTime:   &end,
		TotalCost: ptr.Ptr(150.0),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.EndTime)
	assert.True(t, resp.EndTime.Equal(end))
	require.NotNil(t, resp.TotalCost)
	assert.InDelta(t, 150.0, *resp.TotalCost, 0.001)

	// Расшифровка не заполняется при переданной стоимости
	assert.Zero(t, resp.Subtotal)
	assert.Zero(t, resp.GST)
}

func TestUseCase_Execute_DoubleComplete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.useCase.Execute(ctx, &Request{BookingID: e.bookingID})
	require.NoError(t, err)

	// Повторное завершение отклоняется и не трогает счетчик мест
	_, err = e.useCase.Execute(ctx, &Request{BookingID: e.bookingID})
	assert.ErrorIs(t, err, ErrBookingNotActive)

	spot, err := e.spotRepo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 12, spot.AvailableSpots)
}

func TestUseCase_Execute_CancelledBooking(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.bookingRepo.Cancel(ctx, e.bookingID))

	_, err := e.useCase.Execute(ctx, &Request{BookingID: e.bookingID})
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.useCase.Execute(context.Background(), &Request{BookingID: "missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.useCase.Execute(ctx, &Request{BookingID: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.useCase.Execute(ctx, &Request{BookingID: e.bookingID, TotalCost: ptr.Ptr(-1.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
