package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено на платформе
	ErrBookingNotFound = errors.New("booking not found")

	// ErrValidation возвращается, когда платформа отклонила данные запроса
	ErrValidation = errors.New("booking data rejected")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrPlatformUnavailable возвращается при сетевых сбоях платформы бронирований
	ErrPlatformUnavailable = errors.New("booking platform is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
