package bookings

import (
	"context"

	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

// BookingPlatformClient интерфейс клиента платформы бронирований
type BookingPlatformClient interface {
	GetBooking(ctx context.Context, websiteBookingID string) (*bookingapi.Booking, error)
	UpdateBooking(ctx context.Context, req *bookingapi.UpdateBookingRequest) (*bookingapi.Booking, error)
	CancelBooking(ctx context.Context, websiteBookingID string, reason string) (*bookingapi.CancelResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
