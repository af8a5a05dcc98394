package spots

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository in-memory репозиторий парковок.
// Порядок вставки сохраняется, поэтому List стабилен между вызовами.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.ParkingSpot
	order []string
}

// NewMemoryRepository создает репозиторий с переданным начальным набором парковок
func NewMemoryRepository(seed []*domain.ParkingSpot) *MemoryRepository {
	r := &MemoryRepository{
		byID: make(map[string]*domain.ParkingSpot),
	}
	for _, spot := range seed {
		stored := *spot
		r.byID[stored.ID] = &stored
		r.order = append(r.order, stored.ID)
	}
	return r
}

// GetByID получает парковку по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spot, ok := r.byID[id]
	if !ok {
		return nil, ErrSpotNotFound
	}

	result := *spot
	return &result, nil
}

// List возвращает все парковки в порядке вставки
func (r *MemoryRepository) List(_ context.Context) ([]*domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spots := make([]*domain.ParkingSpot, 0, len(r.order))
	for _, id := range r.order {
		result := *r.byID[id]
		spots = append(spots, &result)
	}
	return spots, nil
}

// Search возвращает парковки, у которых name, address или city содержит
// подстроку text (без учета регистра). Пустой запрос возвращает все парковки.
func (r *MemoryRepository) Search(_ context.Context, text string) ([]*domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(text)

	spots := make([]*domain.ParkingSpot, 0)
	for _, id := range r.order {
		spot := r.byID[id]
		if needle == "" || matches(spot, needle) {
			result := *spot
			spots = append(spots, &result)
		}
	}
	return spots, nil
}

// UpdateAvailability применяет новое значение счетчика доступных мест:
// clamp в [0, TotalSpots] и перевычисление статуса выполняются атомарно
// под write-блокировкой.
func (r *MemoryRepository) UpdateAvailability(_ context.Context, id string, count int) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	spot, ok := r.byID[id]
	if !ok {
		return nil, ErrSpotNotFound
	}

	spot.ApplyAvailability(count)

	result := *spot
	return &result, nil
}

func matches(spot *domain.ParkingSpot, needle string) bool {
	return strings.Contains(strings.ToLower(spot.Name), needle) ||
		strings.Contains(strings.ToLower(spot.Address), needle) ||
		strings.Contains(strings.ToLower(spot.City), needle)
}
