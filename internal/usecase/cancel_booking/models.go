package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID string // ID бронирования
}

// Response модель ответа с отмененным бронированием
type Response struct {
	ID                    string     // ID бронирования
	UserID                string     // ID пользователя
	ParkingSpotID         string     // ID парковки
	VehicleNumber         string     // Госномер
	VehicleType           string     // Тип транспортного средства
	StartTime             time.Time  // Начало сессии
	EndTime               *time.Time // Остается nil: сессия не состоялась
	ExpectedDurationHours int        // Ожидаемая длительность
	TotalCost             *float64   // Остается nil: оплата не взимается
	Status                string     // Статус бронирования

	// Денормализованные данные парковки
	SpotName       string
	SpotHourlyRate float64

	// Доступность парковки после освобождения места
	SpotAvailableSpots int
	SpotStatus         string

	CreatedAt time.Time
}
