package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidGuests возвращается при некорректном размере группы
	ErrInvalidGuests = errors.New("get_available_slots: invalid number of guests")

	// ErrPlatformUnavailable возвращается при сетевых сбоях платформы бронирований
	ErrPlatformUnavailable = errors.New("get_available_slots: booking platform is unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
