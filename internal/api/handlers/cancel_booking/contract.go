package cancel_booking

import (
	"context"

	bookingModels "github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, websiteBookingID string, reason string) (*bookingModels.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
