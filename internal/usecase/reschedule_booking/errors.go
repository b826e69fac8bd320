package reschedule_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("reschedule_booking: session not found")

	// ErrInvalidTransition возвращается, когда сессия не находится на экране дубликата
	ErrInvalidTransition = errors.New("reschedule_booking: no existing booking to reschedule")

	// ErrCancelFailed возвращается, когда старое бронирование не удалось отменить
	// Новое бронирование в этом случае не создается
	ErrCancelFailed = errors.New("reschedule_booking: failed to cancel existing booking")

	// ErrPlatformRejected возвращается, когда платформа отклонила новое бронирование
	// Отмена старого при этом НЕ компенсируется
	ErrPlatformRejected = errors.New("reschedule_booking: new booking rejected by platform")

	// ErrPlatformUnavailable возвращается при сетевых сбоях платформы бронирований
	ErrPlatformUnavailable = errors.New("reschedule_booking: booking platform is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
