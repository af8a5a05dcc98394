package spots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spots"
)

// Service реестр доступности парковок.
// Счетчик свободных мест меняется только через SetAvailability (и через
// usecase-ы бронирования, работающие с репозиторием в транзакции): после
// каждого изменения репозиторий заново вычисляет статус парковки.
type Service struct {
	spotRepo SpotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса парковок
func NewService(spotRepo SpotRepository, logger Logger) *Service {
	return &Service{
		spotRepo: spotRepo,
		logger:   logger,
	}
}

// Get получает парковку по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.ParkingSpot, error) {
	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("Get: spot id=%s not found", id)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("Get: repository error for spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return spot, nil
}

// List возвращает все парковки
func (s *Service) List(ctx context.Context) ([]*domain.ParkingSpot, error) {
	spots, err := s.spotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return spots, nil
}

// Search возвращает парковки по текстовому запросу (подстрока в name,
// address или city без учета регистра). Пустой запрос эквивалентен List.
func (s *Service) Search(ctx context.Context, text string) ([]*domain.ParkingSpot, error) {
	spots, err := s.spotRepo.Search(ctx, text)
	if err != nil {
		s.logger.Error("Search: repository error for query=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Search: query=%q matched %d spots", text, len(spots))
	return spots, nil
}

// SetAvailability выставляет счетчик доступных мест.
// Значение ограничивается диапазоном [0, totalSpots], статус перевычисляется.
func (s *Service) SetAvailability(ctx context.Context, id string, count int) (*domain.ParkingSpot, error) {
	spot, err := s.spotRepo.UpdateAvailability(ctx, id, count)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("SetAvailability: spot id=%s not found", id)
			return nil, ErrSpotNotFound
		}
		s.logger.Error("SetAvailability: repository error for spot id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: spot id=%s available=%d/%d status=%s",
		spot.ID, spot.AvailableSpots, spot.TotalSpots, spot.Status)
	return spot, nil
}
