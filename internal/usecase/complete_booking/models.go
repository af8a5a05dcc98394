package complete_booking

import "time"

// Request модель запроса на завершение бронирования
type Request struct {
	BookingID string     // ID бронирования
	EndTime   *time.Time // Конец сессии; nil = текущее время
	TotalCost *float64   // Итоговая стоимость; nil = рассчитать по тарифу
}

// Response модель ответа с завершенным бронированием
type Response struct {
	ID                    string     // ID бронирования
	UserID                string     // ID пользователя
	ParkingSpotID         string     // ID парковки
	VehicleNumber         string     // Госномер
	VehicleType           string     // Тип транспортного средства
	StartTime             time.Time  // Начало сессии
	EndTime               *time.Time // Конец сессии
	ExpectedDurationHours int        // Ожидаемая длительность
	TotalCost             *float64   // Итоговая стоимость
	Status                string     // Статус бронирования

	// Денормализованные данные парковки
	SpotName       string
	SpotHourlyRate float64

	// Расшифровка стоимости (заполняется при серверном расчете)
	Subtotal   float64
	ServiceFee float64
	GST        float64

	// Доступность парковки после освобождения места
	SpotAvailableSpots int
	SpotStatus         string

	CreatedAt time.Time
}
