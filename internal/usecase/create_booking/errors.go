package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("create_booking: parking spot not found")

	// ErrSpotFull возвращается, когда на парковке нет свободных мест
	ErrSpotFull = errors.New("create_booking: parking spot has no available spots")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
