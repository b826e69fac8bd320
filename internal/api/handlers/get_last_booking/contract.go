package get_last_booking

import (
	"context"

	"github.com/google/uuid"
)

type SessionService interface {
	LastBookingID(ctx context.Context, id uuid.UUID) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
