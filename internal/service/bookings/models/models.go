package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                    string   `json:"id"`
	UserID                string   `json:"userId"`
	ParkingSpotID         string   `json:"parkingSpotId"`
	VehicleNumber         string   `json:"vehicleNumber"`
	VehicleType           string   `json:"vehicleType"`
	StartTime             string   `json:"startTime"` // ISO 8601
	EndTime               *string  `json:"endTime,omitempty"`
	ExpectedDurationHours int      `json:"expectedDuration"`
	TotalCost             *float64 `json:"totalCost"`
	Status                string   `json:"status"`
	SpotName              string   `json:"spotName,omitempty"`
	SpotHourlyRate        float64  `json:"spotHourlyRate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                    b.ID,
		UserID:                b.UserID,
		ParkingSpotID:         b.ParkingSpotID,
		VehicleNumber:         b.VehicleNumber,
		VehicleType:           b.VehicleType,
		StartTime:             b.StartTime.Format(time.RFC3339),
		ExpectedDurationHours: b.ExpectedDurationHours,
		TotalCost:             b.TotalCost,
		Status:                string(b.Status),
		SpotName:              b.SpotName,
		SpotHourlyRate:        b.SpotHourlyRate,
		CreatedAt:             b.CreatedAt,
	}

	if b.EndTime != nil {
		endStr := b.EndTime.Format(time.RFC3339)
		resp.EndTime = &endStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO.
// Наружу отдается плоский массив, не обертка.
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	for _, valid := range domain.ValidBookingStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
