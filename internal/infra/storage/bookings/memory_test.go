package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func newBooking(userID, spotID string) *domain.Booking {
	return &domain.Booking{
		UserID:                userID,
		ParkingSpotID:         spotID,
		VehicleNumber:         "SK-01-A-1234",
		VehicleType:           "car",
		StartTime:             time.Now(),
		ExpectedDurationHours: 2,
		Status:                domain.StatusActive,
	}
}

func TestMemoryRepository_CreateAssignsID(t *testing.T) {
	repo := NewMemoryRepository()

	created, err := repo.Create(context.Background(), newBooking("u1", "1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestMemoryRepository_GetByUserID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, newBooking("u1", "1"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newBooking("u1", "2"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("u2", "1"))
	require.NoError(t, err)

	// Только бронирования пользователя, новые сначала
	bookings, err := repo.GetByUserID(ctx, "u1", nil)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, first.ID, bookings[1].ID)

	// Фильтр по статусу
	require.NoError(t, repo.Complete(ctx, first.ID, time.Now(), 100.30))

	active := domain.StatusActive
	bookings, err = repo.GetByUserID(ctx, "u1", &active)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, second.ID, bookings[0].ID)

	completed := domain.StatusCompleted
	bookings, err = repo.GetByUserID(ctx, "u1", &completed)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, first.ID, bookings[0].ID)
}

func TestMemoryRepository_Complete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("u1", "1"))
	require.NoError(t, err)

	end := time.Now().Add(2 * time.Hour)
	require.NoError(t, repo.Complete(ctx, created.ID, end, 100.30))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	require.NotNil(t, stored.EndTime)
	assert.True(t, stored.EndTime.Equal(end))
	require.NotNil(t, stored.TotalCost)
	assert.InDelta(t, 100.30, *stored.TotalCost, 0.001)
}

func TestMemoryRepository_Cancel(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("u1", "1"))
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, created.ID))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Nil(t, stored.EndTime)
	assert.Nil(t, stored.TotalCost)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = repo.Complete(ctx, "missing", time.Now(), 0)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	err = repo.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
