package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

// SessionRepository интерфейс репозитория сессий мастера
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingPlatformClient интерфейс клиента платформы бронирований
// Нужен только запрос доступности: выбор времени проверяется по свежим данным
type BookingPlatformClient interface {
	CheckAvailability(ctx context.Context, date string, tourTime *string) ([]bookingapi.AvailabilitySlot, error)
}

// LastBookingStore интерфейс хранилища идентификатора последнего бронирования сессии
type LastBookingStore interface {
	GetLastBookingID(ctx context.Context, sessionID string) (string, error)
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
