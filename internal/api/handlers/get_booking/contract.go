package get_booking

import (
	"context"

	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

type BookingService interface {
	GetByPublicID(ctx context.Context, websiteBookingID string) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
