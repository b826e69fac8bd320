package list_tour_times

import (
	"context"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

type CatalogService interface {
	TourTimes(ctx context.Context) ([]domain.TourTime, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
