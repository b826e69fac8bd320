package update_booking

import (
	"context"

	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

type BookingService interface {
	UpdateSchedule(ctx context.Context, websiteBookingID string, req *bookingModels.UpdateScheduleRequest) (*bookingModels.BookingResponse, error)
	UpdateContact(ctx context.Context, websiteBookingID string, req *bookingModels.UpdateContactRequest) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
