package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusActive    BookingStatus = "active"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a parking reservation binding a user, a spot and a time
// interval. TotalCost stays nil until the booking is completed.
type Booking struct {
	ID                    string
	UserID                string
	ParkingSpotID         string
	VehicleNumber         string
	VehicleType           string
	StartTime             time.Time
	EndTime               *time.Time
	ExpectedDurationHours int
	TotalCost             *float64
	Status                BookingStatus

	// Denormalized spot data for history
	SpotName       string
	SpotHourlyRate float64

	CreatedAt time.Time
}

// IsActive returns true if the booking currently holds a unit of spot capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusActive
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusActive
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusActive
}

// Elapsed returns the duration covered by the booking: EndTime-StartTime for
// finished bookings, now-StartTime for active ones.
func (b *Booking) Elapsed(now time.Time) time.Duration {
	end := now
	if b.EndTime != nil {
		end = *b.EndTime
	}
	return end.Sub(b.StartTime)
}
