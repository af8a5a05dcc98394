package complete_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/pricing"
	completeBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/complete_booking"
)

// CompleteBookingRequest HTTP request model. Оба поля опциональны:
// пустое endTime = текущее время, отсутствующий totalCost = расчет по тарифу.
type CompleteBookingRequest struct {
	EndTime   string   `json:"endTime,omitempty"` // RFC3339
	TotalCost *float64 `json:"totalCost,omitempty"`
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
	TotalCostDisplay      string   `json:"totalCostDisplay,omitempty"` // "₹100.30"
	Status                string   `json:"status"`
	SpotName              string   `json:"spotName"`
	SpotHourlyRate        float64  `json:"spotHourlyRate"`
	Subtotal              float64  `json:"subtotal,omitempty"`
	ServiceFee            float64  `json:"serviceFee,omitempty"`
	GST                   float64  `json:"gst,omitempty"`
	SpotAvailableSpots    int      `json:"spotAvailableSpots,omitempty"`
	SpotStatus            string   `json:"spotStatus,omitempty"`
	CreatedAt             string   `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CompleteBookingRequest) ToUseCaseRequest(bookingID string) (*completeBooking.Request, error) {
	req := &completeBooking.Request{
		BookingID: bookingID,
		TotalCost: r.TotalCost,
	}

	if r.EndTime != "" {
		parsed, err := time.Parse(time.RFC3339, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse end time: %w", err)
		}
		req.EndTime = &parsed
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeBooking.Response) *BookingResponse {
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
		Subtotal:              resp.Subtotal,
		ServiceFee:            resp.ServiceFee,
		GST:                   resp.GST,
		SpotAvailableSpots:    resp.SpotAvailableSpots,
		SpotStatus:            resp.SpotStatus,
		CreatedAt:             resp.CreatedAt.Format(time.RFC3339),
	}

	if resp.EndTime != nil {
		endStr := resp.EndTime.Format(time.RFC3339)
		response.EndTime = &endStr
	}

	if resp.TotalCost != nil {
		response.TotalCostDisplay = pricing.FormatCurrencyDetailed(*resp.TotalCost)
	}

	return response
}
