package catalog

import (
	"context"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

// BookingPlatformClient интерфейс клиента платформы бронирований
type BookingPlatformClient interface {
	ListTourTimes(ctx context.Context) ([]bookingapi.TourTime, error)
}

// CatalogCache интерфейс кеша каталога времен туров
type CatalogCache interface {
	GetTourTimes(ctx context.Context) ([]domain.TourTime, error)
	SetTourTimes(ctx context.Context, times []domain.TourTime) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
