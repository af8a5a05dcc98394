package complete_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("complete_booking: booking not found")

	// ErrBookingNotActive бронирование уже завершено или отменено
	ErrBookingNotActive = errors.New("complete_booking: booking is not active")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("complete_booking: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("complete_booking: internal error")
)
