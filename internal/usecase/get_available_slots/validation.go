package get_available_slots

import (
	"fmt"
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// validateRequest проверяет корректность запроса
// Дата в прошлом (по календарю площадки) недопустима
func validateRequest(req *Request, now time.Time, loc *time.Location) error {
	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidGuests, domain.MinGuests)
	}
	if req.Guests > domain.SidebarGuestCap {
		return fmt.Errorf("%w: guests must be at most %d", ErrInvalidGuests, domain.SidebarGuestCap)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	today := venueMidnight(now, loc)
	if venueMidnight(req.Date, loc).Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}
	return nil
}

// venueMidnight усекает момент до полуночи в часовом поясе площадки
func venueMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
