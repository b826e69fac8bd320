package models

import (
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// BookingResponse бронирование для страниц управления
type BookingResponse struct {
	ID               string
	WebsiteBookingID string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	Country          string
	TourDate         string
	TourTime         string
	TourTitle        string
	NumPeople        int
	Status           string
	Notes            string
	CreatedAt        *time.Time
}

// UpdateScheduleRequest изменение расписания бронирования
// Пустые поля не отправляются платформе
type UpdateScheduleRequest struct {
	TourDate  *string
	TourTime  *string
	NumPeople *int
}

// UpdateContactRequest изменение контактных данных бронирования
type UpdateContactRequest struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	Country       *string
}

// CancelResponse результат отмены бронирования
type CancelResponse struct {
	Success bool
	Message string
}

// HasChanges возвращает true, если запрос изменяет хотя бы одно поле
func (r *UpdateScheduleRequest) HasChanges() bool {
	return r.TourDate != nil || r.TourTime != nil || r.NumPeople != nil
}

// HasChanges возвращает true, если запрос изменяет хотя бы одно поле
func (r *UpdateContactRequest) HasChanges() bool {
	return r.CustomerName != nil || r.CustomerEmail != nil || r.CustomerPhone != nil || r.Country != nil
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		WebsiteBookingID: b.WebsiteBookingID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		Country:          b.Country,
		TourDate:         b.TourDate.Format(domain.DateFormat),
		TourTime:         b.TourTime,
		TourTitle:        b.TourTitle,
		NumPeople:        b.NumPeople,
		Status:           string(b.Status),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
	}
}
