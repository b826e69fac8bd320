package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrFullyBooked возвращается, когда на выбранное время не осталось мест
	ErrFullyBooked = errors.New("bookingapi: tour is fully booked")

	// ErrInsufficientSpots возвращается, когда мест меньше, чем запрошено гостей
	// Используется для errors.Is; количество оставшихся мест несет InsufficientSpotsError
	ErrInsufficientSpots = errors.New("bookingapi: not enough spots")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookingapi: booking not found")

	// ErrValidation возвращается при ошибке валидации на стороне платформы
	ErrValidation = errors.New("bookingapi: validation error")

	// ErrNetwork возвращается при сетевой ошибке (запрос не дошел до платформы)
	ErrNetwork = errors.New("bookingapi: network error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("bookingapi: invalid response")

	// ErrUnknown возвращается, когда сообщение об ошибке не удалось классифицировать
	ErrUnknown = errors.New("bookingapi: unknown error")
)

// InsufficientSpotsError ошибка нехватки мест с количеством оставшихся,
// распарсенным из сообщения платформы ("Not enough spots: Only N spots remaining")
type InsufficientSpotsError struct {
	AvailableSpots int
	Message        string
}

// Error реализует интерфейс error
func (e *InsufficientSpotsError) Error() string {
	return fmt.Sprintf("%v: %d available: %s", ErrInsufficientSpots, e.AvailableSpots, e.Message)
}

// Is позволяет матчить ошибку через errors.Is(err, ErrInsufficientSpots)
func (e *InsufficientSpotsError) Is(target error) bool {
	return target == ErrInsufficientSpots
}

// IsCapacityError возвращает true для ошибок исчерпания мест,
// которые требуют принудительного возврата к выбору времени
func IsCapacityError(err error) bool {
	return errors.Is(err, ErrFullyBooked) || errors.Is(err, ErrInsufficientSpots)
}
