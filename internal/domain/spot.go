package domain

import "time"

// SpotStatus represents the derived occupancy status of a parking spot
type SpotStatus string

const (
	SpotAvailable  SpotStatus = "available"
	SpotAlmostFull SpotStatus = "almost_full"
	SpotFull       SpotStatus = "full"
)

// ParkingSpot represents a parking location with finite capacity
type ParkingSpot struct {
	ID             string
	Name           string
	Address        string
	City           string
	State          string
	HourlyRate     float64
	TotalSpots     int
	AvailableSpots int
	OperatingHours string
	Status         SpotStatus
	ImageURL       *string
	CreatedAt      time.Time
}

// ApplyAvailability clamps the requested count into [0, TotalSpots], stores it
// and re-derives Status. It is the only way availability is allowed to change:
// Status must never be set independently of AvailableSpots.
func (s *ParkingSpot) ApplyAvailability(count int) {
	if count < 0 {
		count = 0
	}
	if count > s.TotalSpots {
		count = s.TotalSpots
	}
	s.AvailableSpots = count
	s.Status = s.deriveStatus()
}

func (s *ParkingSpot) deriveStatus() SpotStatus {
	switch {
	case s.AvailableSpots == 0:
		return SpotFull
	case float64(s.AvailableSpots) < AlmostFullRatio*float64(s.TotalSpots):
		return SpotAlmostFull
	default:
		return SpotAvailable
	}
}

// IsFull returns true if the spot has no available capacity
func (s *ParkingSpot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *ParkingSpot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
