package select_date

import (
	"context"
	"time"

	"github.com/google/uuid"

	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

type SessionService interface {
	SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*sessionModels.SessionState, error)
	ClearDate(ctx context.Context, id uuid.UUID) (*sessionModels.SessionState, error)
}

type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
