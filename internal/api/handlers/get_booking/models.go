package get_booking

import (
	"time"

	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

// BookingView HTTP представление бронирования
type BookingView struct {
	BookingID     string `json:"bookingId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Country       string `json:"country,omitempty"`
	TourDate      string `json:"tourDate"`
	TourTime      string `json:"tourTime"`
	TourTitle     string `json:"tourTitle"`
	NumPeople     int    `json:"numPeople"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// FromServiceBooking конвертирует ответ сервиса в HTTP представление
func FromServiceBooking(b *bookingModels.BookingResponse) *BookingView {
	view := &BookingView{
		BookingID:     b.WebsiteBookingID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Country:       b.Country,
		TourDate:      b.TourDate,
		TourTime:      b.TourTime,
		TourTitle:     b.TourTitle,
		NumPeople:     b.NumPeople,
		Status:        b.Status,
		Notes:         b.Notes,
	}
	if b.CreatedAt != nil {
		view.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return view
}
