package set_guests

import (
	"context"

	"github.com/google/uuid"

	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
)

type SessionService interface {
	SetGuests(ctx context.Context, id uuid.UUID, req *sessionModels.SetGuestsRequest) (*sessionModels.SessionState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
