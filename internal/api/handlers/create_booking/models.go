package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID                string `json:"userId"`
	ParkingSpotID         string `json:"parkingSpotId"`
	VehicleNumber         string `json:"vehicleNumber"`
	VehicleType           string `json:"vehicleType"`
	StartTime             string `json:"startTime,omitempty"` // RFC3339; пустое = now
	ExpectedDurationHours int    `json:"expectedDuration"`
}

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
	SpotAvailableSpots    int      `json:"spotAvailableSpots"`
	SpotStatus            string   `json:"spotStatus"`
	CreatedAt             string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var startTime time.Time
	if r.StartTime != "" {
		parsed, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse start time: %w", err)
		}
		startTime = parsed
	}

	return &createBooking.Request{
		UserID:                r.UserID,
		ParkingSpotID:         r.ParkingSpotID,
		VehicleNumber:         r.VehicleNumber,
		VehicleType:           r.VehicleType,
		StartTime:             startTime,
		ExpectedDurationHours: r.ExpectedDurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
