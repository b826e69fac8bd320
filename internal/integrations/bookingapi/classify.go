package bookingapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var spotsPattern = regexp.MustCompile(`Only (\d+) spots?`)

// classifyError классифицирует сообщение об ошибке платформы по таксономии:
// FULLY_BOOKED, INSUFFICIENT_SPOTS (с количеством мест из сообщения),
// NOT_FOUND, VALIDATION_ERROR, UNKNOWN. Проверки построены на вхождении
// подстрок, так как платформа не возвращает машиночитаемые коды ошибок.
func classifyError(message string) error {
	switch {
	case strings.Contains(message, "fully booked"):
		return fmt.Errorf("%w: %s", ErrFullyBooked, message)

	case strings.Contains(message, "Not enough spots"):
		spots := 0
		if m := spotsPattern.FindStringSubmatch(message); m != nil {
			spots, _ = strconv.Atoi(m[1])
		}
		return &InsufficientSpotsError{AvailableSpots: spots, Message: message}

	case strings.Contains(message, "not found"), strings.Contains(message, "Not found"):
		return fmt.Errorf("%w: %s", ErrBookingNotFound, message)

	case strings.Contains(message, "required"),
		strings.Contains(message, "invalid"),
		strings.Contains(message, "Invalid"):
		return fmt.Errorf("%w: %s", ErrValidation, message)

	default:
		return fmt.Errorf("%w: %s", ErrUnknown, message)
	}
}
