package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParkingSpot_ApplyAvailability(t *testing.T) {
	tests := []struct {
		name          string
		totalSpots    int
		count         int
		wantAvailable int
		wantStatus    SpotStatus
	}{
		{
			name:          "NegativeClampedToZero",
			totalSpots:    20,
			count:         -5,
			wantAvailable: 0,
			wantStatus:    SpotFull,
		},
		{
			name:          "AboveTotalClampedToTotal",
			totalSpots:    20,
			count:         25,
			wantAvailable: 20,
			wantStatus:    SpotAvailable,
		},
		{
			name:          "ZeroIsFull",
			totalSpots:    20,
			count:         0,
			wantAvailable: 0,
			wantStatus:    SpotFull,
		},
		{
			name:          "BelowThresholdIsAlmostFull",
			totalSpots:    20,
			count:         5,
			wantAvailable: 5,
			wantStatus:    SpotAlmostFull,
		},
		{
			name:          "AtThresholdIsAvailable",
			totalSpots:    20,
			count:         6,
			wantAvailable: 6,
			wantStatus:    SpotAvailable,
		},
		{
			name:          "FullCapacityIsAvailable",
			totalSpots:    10,
			count:         10,
			wantAvailable: 10,
			wantStatus:    SpotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot := &ParkingSpot{TotalSpots: tt.totalSpots}
			spot.ApplyAvailability(tt.count)

			assert.Equal(t, tt.wantAvailable, spot.AvailableSpots)
			assert.Equal(t, tt.wantStatus, spot.Status)
		})
	}
}

func TestParkingSpot_IsFull(t *testing.T) {
	spot := &ParkingSpot{TotalSpots: 10}

	spot.ApplyAvailability(1)
	assert.False(t, spot.IsFull())

	spot.ApplyAvailability(0)
	assert.True(t, spot.IsFull())
}

func TestParkingSpot_OccupancyRate(t *testing.T) {
	spot := &ParkingSpot{TotalSpots: 20}
	spot.ApplyAvailability(5)

	assert.InDelta(t, 75.0, spot.OccupancyRate(), 0.001)

	empty := &ParkingSpot{TotalSpots: 0}
	assert.Equal(t, 0.0, empty.OccupancyRate())
}
