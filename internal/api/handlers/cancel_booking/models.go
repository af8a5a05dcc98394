package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/cancel_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                    string   `json:"id"`
	UserID                string   `json:"userId"`
	ParkingSpotID         string   `json:"parkingSpotId"`
	VehicleNumber         string   `json:"vehicleNumber"`
	VehicleType           string   `json:"vehicleType"`
	StartTime             string   `json:"startTime"`
	EndTime               *string  `json:"endTime,omitempty"`
	ExpectedDurationHours int      `json:"expectedDuration"`
	TotalCost             *float64 `json:"totalCost"`
	Status                string   `json:"status"`
	SpotName              string   `json:"spotName"`
	SpotHourlyRate        float64  `json:"spotHourlyRate"`
	SpotAvailableSpots    int      `json:"spotAvailableSpots,omitempty"`
	SpotStatus            string   `json:"spotStatus,omitempty"`
	CreatedAt             string   `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *BookingResponse {
	response := &BookingResponse{
		ID:                    resp.ID,
		UserID:                resp.UserID,
		ParkingSpotID:         resp.ParkingSpotID,
		VehicleNumber:         resp.VehicleNumber,
		VehicleType:           resp.VehicleType,
		StartTime:             resp.StartTime.Format(time.RFC3339),
		ExpectedDurationHours: resp.ExpectedDurationHours,
		TotalCost:             resp.TotalCost,
		Status:                resp.Status,
		SpotName:              resp.SpotName,
		SpotHourlyRate:        resp.SpotHourlyRate,
		SpotAvailableSpots:    resp.SpotAvailableSpots,
		SpotStatus:            resp.SpotStatus,
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.EndTime != nil {
		endStr := resp.EndTime.Format(time.RFC3339)
		response.EndTime = &endStr
	}

	return response
}
