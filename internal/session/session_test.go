package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"Zero", 0, "00:00:00"},
		{"SecondsOnly", 42 * time.Second, "00:00:42"},
		{"MixedComponents", 3661 * time.Second, "01:01:01"},
		{"HoursNotWrapped", 48 * time.Hour, "48:00:00"},
		{"NegativeClamped", -5 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestTrack_ActiveBooking(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		Status:    domain.StatusActive,
		StartTime: start,
	}

	snap := Track(booking, 40, start.Add(90*time.Minute))

	assert.Equal(t, 90*time.Minute, snap.Elapsed)
	assert.Equal(t, "01:30:00", snap.Duration)
	assert.InDelta(t, 60.0, snap.CurrentCost, 0.001)
}

func TestTrack_FutureStartReadsAsZero(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		Status:    domain.StatusActive,
		StartTime: start,
	}

	// Сессия еще не началась: и длительность, и стоимость нулевые
	snap := Track(booking, 40, start.Add(-30*time.Minute))

	assert.Equal(t, time.Duration(0), snap.Elapsed)
	assert.Equal(t, "00:00:00", snap.Duration)
	assert.Equal(t, 0.0, snap.CurrentCost)
}

func TestTrack_FinishedBookingUsesEndTime(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	booking := &domain.Booking{
		Status:    domain.StatusCompleted,
		StartTime: start,
		EndTime:   &end,
	}

	snap := Track(booking, 25, end.Add(10*time.Hour))

	assert.Equal(t, 2*time.Hour, snap.Elapsed)
	assert.Equal(t, "02:00:00", snap.Duration)
	assert.InDelta(t, 50.0, snap.CurrentCost, 0.001)
}
