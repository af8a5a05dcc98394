// Package simulation periodically nudges parking spot availability up or
// down to imitate live traffic. It is intended for demo environments and is
// off by default.
package simulation

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// changeChance доля парковок, меняющихся за один тик
const changeChance = 0.1

type SpotsService interface {
	List(ctx context.Context) ([]*domain.ParkingSpot, error)
	SetAvailability(ctx context.Context, id string, count int) (*domain.ParkingSpot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Simulator фоновый процесс, имитирующий приток и отток машин
type Simulator struct {
	spots    SpotsService
	logger   Logger
	interval time.Duration
	rnd      *rand.Rand
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New создает симулятор с указанным интервалом тика
func New(spots SpotsService, logger Logger, interval time.Duration) *Simulator {
	return &Simulator{
		spots:    spots,
		logger:   logger,
		interval: interval,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start запускает фоновый цикл симуляции
func (s *Simulator) Start() {
	s.logger.Info("Simulator: started, interval=%s", s.interval)

	go func() {
		defer close(s.doneCh)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stopCh:
				return
			}
		}
	}()
}

// Stop останавливает симуляцию и дожидается завершения цикла
func (s *Simulator) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("Simulator: stopped")
}

// tick для каждой парковки с вероятностью changeChance меняет счетчик
// на +1 или -1. Выход за границы [0, totalSpots] гасится на уровне domain.
func (s *Simulator) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	spots, err := s.spots.List(ctx)
	if err != nil {
		s.logger.Warn("Simulator: failed to list spots: %v", err)
		return
	}

	for _, spot := range spots {
		if s.rnd.Float64() >= changeChance {
			continue
		}

		delta := 1
		if s.rnd.Float64() < 0.5 {
			delta = -1
		}

		if _, err := s.spots.SetAvailability(ctx, spot.ID, spot.AvailableSpots+delta); err != nil {
			s.logger.Warn("Simulator: failed to update spot id=%s: %v", spot.ID, err)
		}
	}
}
