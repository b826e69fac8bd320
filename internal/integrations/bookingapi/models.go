package bookingapi

import (
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// TourTime запись каталога времен туров
type TourTime struct {
	TourTime  string `json:"tour_time"`
	TourTitle string `json:"tour_title"`
}

// AvailabilitySlot доступность одного времени тура на дату
type AvailabilitySlot struct {
	TourTime       string `json:"tour_time"`
	TourTitle      string `json:"tour_title"`
	TotalBooked    int    `json:"total_booked"`
	AvailableSpots int    `json:"available_spots"`
	IsAvailable    bool   `json:"is_available"`
}

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	Country           string `json:"country,omitempty"`
	TourDate          string `json:"tour_date"` // "2006-01-02"
	TourTime          string `json:"tour_time"` // "15:04"
	TourTitle         string `json:"tour_title"`
	NumPeople         int    `json:"num_people"`
	Notes             string `json:"notes"`
	PotentialBigGroup bool   `json:"potential_big_group"`
}

// UpdateBookingRequest запрос на частичное обновление бронирования
// Заполненные поля мержатся на стороне платформы
type UpdateBookingRequest struct {
	WebsiteBookingID string  `json:"website_booking_id"`
	CustomerName     *string `json:"customer_name,omitempty"`
	CustomerEmail    *string `json:"customer_email,omitempty"`
	CustomerPhone    *string `json:"customer_phone,omitempty"`
	Country          *string `json:"country,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	TourDate         *string `json:"tour_date,omitempty"`
	TourTime         *string `json:"tour_time,omitempty"`
	NumPeople        *int    `json:"num_people,omitempty"`
}

// Booking бронирование в представлении платформы
type Booking struct {
	ID               string `json:"id"`
	WebsiteBookingID string `json:"website_booking_id"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerPhone    string `json:"customer_phone,omitempty"`
	Country          string `json:"country,omitempty"`
	TourDate         string `json:"tour_date"`
	TourTime         string `json:"tour_time"`
	TourTitle        string `json:"tour_title"`
	NumPeople        int    `json:"num_people"`
	Status           string `json:"status"`
	Notes            string `json:"notes,omitempty"`
	CreatedAt        string `json:"created_at,omitempty"`
}

// ExistingBooking ответ поиска бронирования по email
type ExistingBooking struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	Persons       int    `json:"persons"`
	BookingCode   string `json:"booking_code"`
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Country       string `json:"country,omitempty"`
}

// CancelResult результат отмены бронирования
type CancelResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// apiError тело ошибки платформы
type apiError struct {
	Error          string `json:"error"`
	AvailableSpots *int   `json:"available_spots,omitempty"`
}

// bookingEnvelope обертка ответов create/get/update
type bookingEnvelope struct {
	Booking *Booking `json:"booking"`
}

// existsResponse ответ проверки существования бронирования
type existsResponse struct {
	Exists bool `json:"exists"`
}

// byEmailEnvelope обертка ответа get-booking-by-email
type byEmailEnvelope struct {
	Success bool             `json:"success"`
	Booking *ExistingBooking `json:"booking"`
}

// ToDomain конвертирует Booking в доменную модель
func (b *Booking) ToDomain() (*domain.Booking, error) {
	tourDate, err := time.Parse(domain.DateFormat, b.TourDate)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:               b.ID,
		WebsiteBookingID: b.WebsiteBookingID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		Country:          b.Country,
		TourDate:         tourDate,
		TourTime:         normalizeTime(b.TourTime),
		TourTitle:        b.TourTitle,
		NumPeople:        b.NumPeople,
		Status:           domain.BookingStatus(b.Status),
		Notes:            b.Notes,
	}

	if b.CreatedAt != "" {
		if createdAt, err := time.Parse(time.RFC3339, b.CreatedAt); err == nil {
			booking.CreatedAt = &createdAt
		}
	}

	return booking, nil
}

// ToDomain конвертирует ExistingBooking в доменную модель
func (e *ExistingBooking) ToDomain() *domain.ExistingBooking {
	return &domain.ExistingBooking{
		Date:          e.Date,
		Time:          normalizeTime(e.Time),
		Persons:       e.Persons,
		BookingCode:   e.BookingCode,
		CustomerName:  e.CustomerName,
		CustomerEmail: e.CustomerEmail,
		CustomerPhone: e.CustomerPhone,
		Country:       e.Country,
	}
}

// ToDomain конвертирует AvailabilitySlot в доменную модель
func (s *AvailabilitySlot) ToDomain() domain.AvailabilitySlot {
	return domain.AvailabilitySlot{
		TourTime:       normalizeTime(s.TourTime),
		TourTitle:      s.TourTitle,
		TotalBooked:    s.TotalBooked,
		AvailableSpots: s.AvailableSpots,
		IsAvailable:    s.IsAvailable,
	}
}

// normalizeTime приводит "10:00:00" к "10:00" (платформа отдает время с секундами)
func normalizeTime(t string) string {
	if len(t) >= 8 && t[2] == ':' && t[5] == ':' {
		return t[:5]
	}
	return t
}
