package get_session

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	"github.com/m04kA/SMC-ParkingService/internal/session"
)

// SessionResponse живое состояние парковочной сессии
type SessionResponse struct {
	BookingID          string  `json:"bookingId"`
	StartTime          string  `json:"startTime"`
	Duration           string  `json:"duration"` // "HH:MM:SS"
	ElapsedSeconds     int64   `json:"elapsedSeconds"`
	CurrentCost        float64 `json:"currentCost"`
	CurrentCostDisplay string  `json:"currentCostDisplay"` // "₹1,240.50"
	HourlyRate         float64 `json:"hourlyRate"`
	Status             string  `json:"status"`
}

// FromSnapshot собирает HTTP response из бронирования и снапшота сессии
func FromSnapshot(b *domain.Booking, snap session.Snapshot) *SessionResponse {
	return &SessionResponse{
		BookingID:          b.ID,
		StartTime:          b.StartTime.Format(time.RFC3339),
		Duration:           snap.Duration,
		ElapsedSeconds:     int64(snap.Elapsed.Seconds()),
		CurrentCost:        snap.CurrentCost,
		CurrentCostDisplay: pricing.FormatCurrencyDetailed(snap.CurrentCost),
		HourlyRate:         b.SpotHourlyRate,
		Status:             string(b.Status),
	}
}
