package set_private_guests

import (
	"context"

	"github.com/google/uuid"

	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
)

type SessionService interface {
	SetPrivateGuests(ctx context.Context, id uuid.UUID, guests int, advance bool) (*sessionModels.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
