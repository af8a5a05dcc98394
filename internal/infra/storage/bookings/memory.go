package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository in-memory репозиторий бронирований
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Booking
	order []string
}

// NewMemoryRepository создает пустой in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]*domain.Booking),
	}
}

// Create создает новое бронирование
func (r *MemoryRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.CreatedAt = time.Now()

	stored := *booking
	r.byID[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	result := stored
	return &result, nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := *booking
	return &result, nil
}

// GetByUserID получает бронирования пользователя, новые сначала.
// Опционально фильтрует по статусу.
func (r *MemoryRepository) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		booking := r.byID[r.order[i]]
		if booking.UserID != userID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result := *booking
		bookings = append(bookings, &result)
	}
	return bookings, nil
}

// Complete переводит бронирование в completed с фиксацией времени и стоимости
func (r *MemoryRepository) Complete(_ context.Context, id string, endTime time.Time, totalCost float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return ErrBookingNotFound
	}

	booking.Status = domain.StatusCompleted
	end := endTime
	booking.EndTime = &end
	cost := totalCost
	booking.TotalCost = &cost

	return nil
}

// Cancel переводит бронирование в cancelled
func (r *MemoryRepository) Cancel(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return ErrBookingNotFound
	}

	booking.Status = domain.StatusCancelled
	return nil
}
