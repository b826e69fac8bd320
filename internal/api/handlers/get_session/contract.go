package get_session

import (
	"context"

	"github.com/google/uuid"

	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

type SessionService interface {
	Get(ctx context.Context, id uuid.UUID) (*sessionModels.SessionState, error)
}

type QuickDatesProvider interface {
	QuickDates(ctx context.Context, guests int) ([]getAvailableSlots.QuickDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
