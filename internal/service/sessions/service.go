package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/infra/cache"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
	"github.com/amswalks/AWT-BookingFunnel/pkg/types"
)

// Service сервис жизненного цикла сессий мастера бронирования
// Все переходы между шагами выполняются в serializable-транзакции:
// параллельный повторный сабмит увидит уже продвинутый шаг и будет
// отклонен как недопустимый переход
type Service struct {
	sessionRepo  SessionRepository
	platform     BookingPlatformClient
	lastBookings LastBookingStore
	txManager    TransactionManager
	timeProvider TimeProvider
	venueLoc     *time.Location
	cutoff       time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	platform BookingPlatformClient,
	lastBookings LastBookingStore,
	txManager TransactionManager,
	timeProvider TimeProvider,
	venueLoc *time.Location,
	cutoff time.Duration,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		platform:     platform,
		lastBookings: lastBookings,
		txManager:    txManager,
		timeProvider: timeProvider,
		venueLoc:     venueLoc,
		cutoff:       cutoff,
		logger:       logger,
	}
}

// Start создает новую пустую сессию на шаге выбора даты
func (s *Service) Start(ctx context.Context) (*models.SessionState, error) {
	session := domain.NewSession(s.timeProvider.Now())

	created, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		s.logger.Error("Start: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Start: created session id=%s", created.ID)
	return models.FromDomainSession(created), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.SessionState, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSession(session), nil
}

// SelectDate выбирает дату тура
// Сбрасывает размер группы, выбранное время и показ слотов; допускается
// возврат с более поздних подсостояний первого шага
func (s *Service) SelectDate(ctx context.Context, id uuid.UUID, date time.Time) (*models.SessionState, error) {
	s.logger.Info("SelectDate: session id=%s date=%s", id, date.Format(domain.DateFormat))

	return s.mutate(ctx, id, func(session *domain.Session) error {
		return session.SelectDate(date)
	})
}

// ClearDate снимает выбор даты, возвращая сессию к началу первого шага
func (s *Service) ClearDate(ctx context.Context, id uuid.UUID) (*models.SessionState, error) {
	s.logger.Info("ClearDate: session id=%s", id)

	return s.mutate(ctx, id, func(session *domain.Session) error {
		return session.ClearDate()
	})
}

// SetGuests изменяет размер группы
// Значение зажимается в [1, 20]; превышение 6 навсегда помечает сессию
// как интересовавшуюся большой группой. При req.Advance мастер продвигается:
// до 6 гостей - к показу слотов, больше - в ветку частного тура
func (s *Service) SetGuests(ctx context.Context, id uuid.UUID, req *models.SetGuestsRequest) (*models.SessionState, error) {
	guests := req.Guests
	if guests < domain.MinGuests {
		guests = domain.MinGuests
	}
	if guests > domain.SidebarGuestCap {
		guests = domain.SidebarGuestCap
	}

	s.logger.Info("SetGuests: session id=%s guests=%d advance=%t", id, guests, req.Advance)

	return s.mutate(ctx, id, func(session *domain.Session) error {
		if err := session.SetGuests(guests); err != nil {
			return err
		}
		if req.Advance {
			return session.ContinueFromGuests()
		}
		return nil
	})
}

// SelectTime выбирает время тура и переводит сессию к шагу контактов
// Время проверяется по свежей доступности: слот должен существовать,
// вмещать группу и (для сегодняшней даты) начинаться после отсечки
func (s *Service) SelectTime(ctx context.Context, id uuid.UUID, tourTime string) (*models.SessionState, error) {
	selected, err := types.NewTimeStringFromString(tourTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, tourTime)
	}

	s.logger.Info("SelectTime: session id=%s time=%s", id, selected)

	return s.mutate(ctx, id, func(session *domain.Session) error {
		if session.TourDate == nil {
			return ErrDateNotSelected
		}

		slots, err := s.startableSlots(ctx, *session.TourDate, session.Guests)
		if err != nil {
			return err
		}

		found := false
		for _, slot := range slots {
			if slot.TourTime == selected.String() {
				found = true
				break
			}
		}
		if !found {
			s.logger.Warn("SelectTime: slot %s not available for session id=%s", selected, id)
			return ErrSlotUnavailable
		}

		return session.SelectTime(selected)
	})
}

// GoBack выполняет явный обратный переход мастера
func (s *Service) GoBack(ctx context.Context, id uuid.UUID) (*models.SessionState, error) {
	s.logger.Info("GoBack: session id=%s", id)

	return s.mutate(ctx, id, func(session *domain.Session) error {
		return session.GoBack()
	})
}

// SetPrivateGuests изменяет размер группы частного тура
// Значение зажимается в [1, 30]; ответ содержит расчет стоимости.
// При advance мастер переходит к контактам частного тура
func (s *Service) SetPrivateGuests(ctx context.Context, id uuid.UUID, guests int, advance bool) (*models.SessionState, error) {
	s.logger.Info("SetPrivateGuests: session id=%s guests=%d advance=%t", id, guests, advance)

	return s.mutate(ctx, id, func(session *domain.Session) error {
		if err := session.SetPrivateGuests(guests); err != nil {
			return err
		}
		if advance {
			return session.ContinueToPrivateContact()
		}
		return nil
	})
}

// Close удаляет сессию
// Результаты незавершенных операций при этом теряются
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Close: session id=%s", id)

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Close: repository error for session id=%s: %v", id, err)
		return fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}
	return nil
}

// LastBookingID возвращает публичный идентификатор последнего созданного
// бронирования сессии (повторное открытие страницы подтверждения)
func (s *Service) LastBookingID(ctx context.Context, id uuid.UUID) (string, error) {
	bookingID, err := s.lastBookings.GetLastBookingID(ctx, id.String())
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return "", ErrSessionNotFound
		}
		s.logger.Error("LastBookingID: cache error for session id=%s: %v", id, err)
		return "", fmt.Errorf("%w: LastBookingID - cache error: %v", ErrInternal, err)
	}
	return bookingID, nil
}

// mutate выполняет переход состояния сессии в serializable-транзакции
func (s *Service) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error) (*models.SessionState, error) {
	var result *domain.Session

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if err := fn(session); err != nil {
			return err
		}

		session.UpdatedAt = s.timeProvider.Now()
		if err := s.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		result = session
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			s.logger.Warn("mutate: invalid transition for session id=%s: %v", id, err)
			return nil, ErrInvalidTransition
		case errors.Is(err, domain.ErrDateNotSelected):
			s.logger.Warn("mutate: date not selected for session id=%s", id)
			return nil, ErrDateNotSelected
		case errors.Is(err, domain.ErrTimeNotSelected):
			s.logger.Warn("mutate: time not selected for session id=%s", id)
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	return models.FromDomainSession(result), nil
}

// startableSlots запрашивает доступность и фильтрует слоты по размеру группы
// и временной отсечке площадки
func (s *Service) startableSlots(ctx context.Context, date time.Time, guests int) ([]domain.AvailabilitySlot, error) {
	raw, err := s.platform.CheckAvailability(ctx, date.Format(domain.DateFormat), nil)
	if err != nil {
		s.logger.Error("startableSlots: availability request failed: %v", err)
		return nil, fmt.Errorf("%w: availability request failed: %v", ErrInternal, err)
	}

	slots := make([]domain.AvailabilitySlot, 0, len(raw))
	for _, dto := range raw {
		slots = append(slots, dto.ToDomain())
	}

	return domain.FilterStartable(slots, guests, date, s.timeProvider.Now(), s.venueLoc, s.cutoff), nil
}
