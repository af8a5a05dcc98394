package spots

import "errors"

var (
	// ErrSpotNotFound возвращается, когда парковка не найдена
	ErrSpotNotFound = errors.New("parking spot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("spots service: internal error")
)
