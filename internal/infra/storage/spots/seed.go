package spots

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// SeedSpots стартовый набор парковок Сиккима для in-memory драйвера.
// Статусы соответствуют правилу вычисления из счетчика доступных мест.
func SeedSpots() []*domain.ParkingSpot {
	now := time.Now()

	return []*domain.ParkingSpot{
		{
			ID:             "1",
			Name:           "MG Marg Central Parking",
			Address:        "Near Tibet Road, Gangtok, Sikkim 737101",
			City:           "Gangtok",
			State:          "Sikkim",
			HourlyRate:     40.00,
			TotalSpots:     20,
			AvailableSpots: 12,
			OperatingHours: "24/7",
			Status:         domain.SpotAvailable,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1578662996442-48f60103fc96"),
			CreatedAt:      now,
		},
		{
			ID:             "2",
			Name:           "Lal Bazaar Shopping Complex",
			Address:        "Market Road, Gangtok, Sikkim 737101",
			City:           "Gangtok",
			State:          "Sikkim",
			HourlyRate:     35.00,
			TotalSpots:     15,
			AvailableSpots: 3,
			OperatingHours: "6AM-10PM",
			Status:         domain.SpotAlmostFull,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1578662996442-48f60103fc96"),
			CreatedAt:      now,
		},
		{
			ID:             "3",
			Name:           "Rumtek Monastery Parking",
			Address:        "Rumtek Road, East Sikkim 737135",
			City:           "Rumtek",
			State:          "Sikkim",
			HourlyRate:     25.00,
			TotalSpots:     30,
			AvailableSpots: 25,
			OperatingHours: "5AM-8PM",
			Status:         domain.SpotAvailable,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1544735716-392fe2489ffa"),
			CreatedAt:      now,
		},
		{
			ID:             "4",
			Name:           "Namchi Central Plaza",
			Address:        "Central Road, Namchi, South Sikkim 737126",
			City:           "Namchi",
			State:          "Sikkim",
			HourlyRate:     30.00,
			TotalSpots:     25,
			AvailableSpots: 18,
			OperatingHours: "24/7",
			Status:         domain.SpotAvailable,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1578662996442-48f60103fc96"),
			CreatedAt:      now,
		},
		{
			ID:             "5",
			Name:           "Pelling Tourist Hub",
			Address:        "Upper Pelling, West Sikkim 737113",
			City:           "Pelling",
			State:          "Sikkim",
			HourlyRate:     45.00,
			TotalSpots:     12,
			AvailableSpots: 0,
			OperatingHours: "7AM-9PM",
			Status:         domain.SpotFull,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1544735716-392fe2489ffa"),
			CreatedAt:      now,
		},
		{
			ID:             "6",
			Name:           "Secretariat Complex Parking",
			Address:        "Tashiling, Gangtok, Sikkim 737103",
			City:           "Gangtok",
			State:          "Sikkim",
			HourlyRate:     50.00,
			TotalSpots:     10,
			AvailableSpots: 8,
			OperatingHours: "9AM-6PM",
			Status:         domain.SpotAvailable,
			ImageURL:       ptr.Ptr("https://images.unsplash.com/photo-1578662996442-48f60103fc96"),
			CreatedAt:      now,
		},
	}
}
