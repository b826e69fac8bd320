package domain

import "time"

// BookingStatus represents the status of a booking on the remote platform
type BookingStatus string

const (
	StatusScheduled BookingStatus = "scheduled"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a booking persisted by the remote booking platform.
// The wizard never fabricates one locally: a Booking exists only after
// the create call returned success.
type Booking struct {
	ID               string
	WebsiteBookingID string // public-facing opaque code, used for lookup
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Country          string
	TourDate         time.Time
	TourTime         string
	TourTitle        string
	NumPeople        int
	Status           BookingStatus
	Notes            string
	CreatedAt        *time.Time
}

// IsScheduled returns true if the booking is still active
func (b *Booking) IsScheduled() bool {
	return b.Status == StatusScheduled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ExistingBooking is the duplicate-lookup result: a booking already on file
// for the email the visitor entered in the contact step.
type ExistingBooking struct {
	Date          string // "2006-01-02"
	Time          string // "15:04"
	Persons       int
	BookingCode   string // public booking id of the existing booking
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Country       string
}

// TourTime is one entry of the tour-time catalog
type TourTime struct {
	TourTime  string
	TourTitle string
}
