package list_spots

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotResponse HTTP response model
type SpotResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	HourlyRate     float64 `json:"hourlyRate"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots int     `json:"availableSpots"`
	OperatingHours string  `json:"operatingHours,omitempty"`
	Status         string  `json:"status"`
	ImageURL       *string `json:"imageUrl,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// FromDomainSpot конвертирует domain модель в HTTP response
func FromDomainSpot(s *domain.ParkingSpot) SpotResponse {
	return SpotResponse{
		ID:             s.ID,
		Name:           s.Name,
		Address:        s.Address,
		City:           s.City,
		State:          s.State,
		HourlyRate:     s.HourlyRate,
		TotalSpots:     s.TotalSpots,
		AvailableSpots: s.AvailableSpots,
		OperatingHours: s.OperatingHours,
		Status:         string(s.Status),
		ImageURL:       s.ImageURL,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainSpotList конвертирует список domain моделей в HTTP response.
// Наружу отдается плоский массив, не обертка.
func FromDomainSpotList(spots []*domain.ParkingSpot) []SpotResponse {
	resp := make([]SpotResponse, 0, len(spots))
	for _, spot := range spots {
		resp = append(resp, FromDomainSpot(spot))
	}
	return resp
}
