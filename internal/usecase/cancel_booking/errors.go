package cancel_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrBookingNotActive отменить можно только активное бронирование
	ErrBookingNotActive = errors.New("cancel_booking: booking is not active")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("cancel_booking: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("cancel_booking: internal error")
)
