package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID                string    // ID пользователя
	ParkingSpotID         string    // ID парковки
	VehicleNumber         string    // Госномер
	VehicleType           string    // Тип транспортного средства
	StartTime             time.Time // Начало сессии; нулевое значение = now
	ExpectedDurationHours int       // Ожидаемая длительность в часах
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                    string     // ID созданного бронирования
	UserID                string     // ID пользователя
	ParkingSpotID         string     // ID парковки
	VehicleNumber         string     // Госномер
	VehicleType           string     // Тип транспортного средства
	StartTime             time.Time  // Начало сессии
	EndTime               *time.Time // Конец сессии (nil для активной)
	ExpectedDurationHours int        // Ожидаемая длительность
	TotalCost             *float64   // Итоговая стоимость (nil до завершения)
	Status                string     // Статус бронирования

	// Денормализованные данные парковки
	SpotName       string
	SpotHourlyRate float64

	// Доступность парковки после бронирования
	SpotAvailableSpots int
	SpotStatus         string

	CreatedAt time.Time
}
