package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrInvalidTransition возвращается, когда сессия не готова к подтверждению
	ErrInvalidTransition = errors.New("confirm_booking: session is not ready for confirmation")

	// ErrInvalidName возвращается при пустом имени
	ErrInvalidName = errors.New("confirm_booking: name is required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("confirm_booking: invalid email address")

	// ErrPlatformRejected возвращается, когда платформа отклонила данные бронирования
	ErrPlatformRejected = errors.New("confirm_booking: booking rejected by platform")

	// ErrPlatformUnavailable возвращается при сетевых сбоях платформы бронирований
	ErrPlatformUnavailable = errors.New("confirm_booking: booking platform is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
