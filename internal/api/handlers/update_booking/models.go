package update_booking

import (
	"time"

	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Страница переноса присылает поля расписания, страница контактов -
// контактные; незаполненные поля не трогаются
type UpdateBookingRequest struct {
	TourDate      *string `json:"tourDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TourTime      *string `json:"tourTime,omitempty" validate:"omitempty,datetime=15:04"`
	NumPeople     *int    `json:"numPeople,omitempty" validate:"omitempty,min=1,max=20"`
	CustomerName  *string `json:"customerName,omitempty" validate:"omitempty,min=1,max=200"`
	CustomerEmail *string `json:"customerEmail,omitempty" validate:"omitempty,booking_email"`
	CustomerPhone *string `json:"customerPhone,omitempty" validate:"omitempty,max=30"`
	Country       *string `json:"country,omitempty" validate:"omitempty,max=100"`
}

// scheduleChanges возвращает запрос на изменение расписания или nil
func (r *UpdateBookingRequest) scheduleChanges() *bookingModels.UpdateScheduleRequest {
	if r.TourDate == nil && r.TourTime == nil && r.NumPeople == nil {
		return nil
	}
	return &bookingModels.UpdateScheduleRequest{
		TourDate:  r.TourDate,
		TourTime:  r.TourTime,
		NumPeople: r.NumPeople,
	}
}

// contactChanges возвращает запрос на изменение контактов или nil
func (r *UpdateBookingRequest) contactChanges() *bookingModels.UpdateContactRequest {
	if r.CustomerName == nil && r.CustomerEmail == nil && r.CustomerPhone == nil && r.Country == nil {
		return nil
	}
	return &bookingModels.UpdateContactRequest{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Country:       r.Country,
	}
}

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
