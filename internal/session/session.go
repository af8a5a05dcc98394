// Package session derives the live view of a booking: elapsed time and
// running cost. Nothing here is persisted; every snapshot is recomputed from
// the booking timestamps at the moment of observation. The authoritative
// total is computed once, at completion, by internal/pricing.
package session

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

// Snapshot derived state of a parking session at a point in time
type Snapshot struct {
	Elapsed     time.Duration
	Duration    string  // "HH:MM:SS"
	CurrentCost float64 // rounded to 2 decimals, display only
}

// Track computes the snapshot for a booking against the given clock reading.
// For finished bookings the end timestamp wins over now. A start time still in
// the future reads as a zero-length session, never a negative cost.
func Track(b *domain.Booking, hourlyRate float64, now time.Time) Snapshot {
	elapsed := b.Elapsed(now)
	if elapsed < 0 {
		elapsed = 0
	}
	return Snapshot{
		Elapsed:     elapsed,
		Duration:    FormatDuration(elapsed),
		CurrentCost: pricing.Round2(hourlyRate * elapsed.Hours()),
	}
}

// FormatDuration renders a duration as zero-padded "HH:MM:SS". Hours are not
// wrapped at 24: a two-day session reads "48:00:00".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
