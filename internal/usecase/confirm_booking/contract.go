package confirm_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

// SessionRepository интерфейс репозитория сессий мастера
type SessionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
}

// BookingPlatformClient интерфейс клиента платформы бронирований
type BookingPlatformClient interface {
	CheckBookingExists(ctx context.Context, email string) (bool, error)
	GetBookingByEmail(ctx context.Context, email string) (*bookingapi.ExistingBooking, error)
	CreateBooking(ctx context.Context, req *bookingapi.CreateBookingRequest) (*bookingapi.Booking, error)
	CheckAvailability(ctx context.Context, date string, tourTime *string) ([]bookingapi.AvailabilitySlot, error)
}

// TourTitleResolver интерфейс каталога для определения названия тура
type TourTitleResolver interface {
	ResolveTitle(ctx context.Context, tourTime string) string
}

// LastBookingStore интерфейс хранилища идентификатора последнего бронирования сессии
type LastBookingStore interface {
	SetLastBookingID(ctx context.Context, sessionID, publicID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
