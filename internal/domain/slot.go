package domain

import "time"

// AvailabilitySlot represents a bookable tour-time instance on a given date
// with a remaining-capacity count, as reported by the remote platform.
// Never cached across date changes: refetched whenever the selected date changes.
type AvailabilitySlot struct {
	TourTime       string // "15:04"
	TourTitle      string
	TotalBooked    int
	AvailableSpots int
	IsAvailable    bool
}

// Fits returns true if the slot has room for the requested party size
func (s *AvailabilitySlot) Fits(guests int) bool {
	return s.IsAvailable && s.AvailableSpots >= guests
}

// RunningLow returns true if the slot should be flagged as nearly full
func (s *AvailabilitySlot) RunningLow() bool {
	return s.IsAvailable && s.AvailableSpots <= StandardGroupCap
}

// StartTime resolves the slot's start on the given date in the venue timezone.
// A malformed tour time yields the zero time.
func (s *AvailabilitySlot) StartTime(date time.Time, loc *time.Location) time.Time {
	t, err := time.ParseInLocation(TimeFormat, s.TourTime, loc)
	if err != nil {
		return time.Time{}
	}
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// SameVenueDay reports whether two instants fall on the same calendar day
// in the venue timezone.
func SameVenueDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FilterStartable returns the slots a party of the given size can still book
// on the date. Same-day slots must start after now plus the cutoff window;
// future dates are not subject to the cutoff.
func FilterStartable(slots []AvailabilitySlot, guests int, date, now time.Time, loc *time.Location, cutoff time.Duration) []AvailabilitySlot {
	sameDay := SameVenueDay(date, now, loc)
	deadline := now.In(loc).Add(cutoff)

	out := make([]AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		if !s.Fits(guests) {
			continue
		}
		if sameDay && !s.StartTime(date, loc).After(deadline) {
			continue
		}
		out = append(out, s)
	}
	return out
}
