package start_session

import (
	"context"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

type SessionService interface {
	Start(ctx context.Context) (*sessionModels.SessionState, error)
}

type CatalogService interface {
	TourTimes(ctx context.Context) ([]domain.TourTime, error)
}

type QuickDatesProvider interface {
	QuickDates(ctx context.Context, guests int) ([]getAvailableSlots.QuickDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
