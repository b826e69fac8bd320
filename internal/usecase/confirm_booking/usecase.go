package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/pkg/ptr"
)

// Сообщения для посетителя
const (
	msgDuplicateFound = "We found an existing booking for this email address"
	msgFullyBooked    = "This time is fully booked. Please pick another time"
	msgSpotsRemaining = "Only %d spots remaining for this time. Please pick another time or reduce your group size"
)

// UseCase use case подтверждения бронирования (сабмит контактного шага)
//
// Протокол дубликатов: сначала быстрая проверка существования по email,
// затем запрос деталей. Детали есть - показываем найденное бронирование
// и НЕ создаем новое; существует, но детали получить не удалось -
// создаем как обычно. Ошибки вместимости возвращают мастер к выбору
// времени со свежей доступностью, прочие ошибки состояние не меняют
type UseCase struct {
	sessionRepo  SessionRepository
	platform     BookingPlatformClient
	titles       TourTitleResolver
	lastBookings LastBookingStore
	txManager    TransactionManager
	timeProvider TimeProvider
	venueLoc     *time.Location
	cutoff       time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	platform BookingPlatformClient,
	titles TourTitleResolver,
	lastBookings LastBookingStore,
	txManager TransactionManager,
	venueLoc *time.Location,
	cutoff time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		platform:     platform,
		titles:       titles,
		lastBookings: lastBookings,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		venueLoc:     venueLoc,
		cutoff:       cutoff,
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session id=%s", req.SessionID)

	// 1. Валидация контактных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	// Весь протокол выполняется в serializable-транзакции: повторный
	// параллельный сабмит увидит продвинутый шаг и будет отклонен
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		// 2. Фиксируем контактные данные на сессии
		if err := session.SetContact(req.Name, req.Email); err != nil {
			uc.logger.Warn("ConfirmBooking: session id=%s not ready: %v", req.SessionID, err)
			return ErrInvalidTransition
		}

		// 3. Протокол дубликатов
		existing := uc.lookupExisting(ctx, req.Email)
		if existing != nil {
			if err := session.MarkDuplicateFound(existing); err != nil {
				return ErrInvalidTransition
			}
			session.UpdatedAt = uc.timeProvider.Now()
			if err := uc.sessionRepo.Update(ctx, session); err != nil {
				return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
			}

			uc.logger.Info("ConfirmBooking: duplicate found for session id=%s, booking code=%s",
				req.SessionID, existing.BookingCode)
			resp = &Response{
				Outcome: OutcomeDuplicateFound,
				Session: session,
				Message: msgDuplicateFound,
			}
			return nil
		}

		// 4. Создаем бронирование
		booking, err := uc.createBooking(ctx, session)
		if err != nil {
			return uc.handleCreateError(ctx, session, err, &resp)
		}

		// 5. Успех: переходим к обогащению контактов
		if err := session.MarkBookingCreated(booking.WebsiteBookingID); err != nil {
			return ErrInvalidTransition
		}
		session.UpdatedAt = uc.timeProvider.Now()
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		uc.logger.Info("ConfirmBooking: created booking id=%s for session id=%s",
			booking.WebsiteBookingID, req.SessionID)
		resp = &Response{
			Outcome: OutcomeCreated,
			Session: session,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Запоминаем последнее бронирование сессии (повторное открытие
	// страницы подтверждения); сбой кеша бронирование не отменяет
	if resp.Outcome == OutcomeCreated && resp.Session.BookingPublicID != nil {
		if err := uc.lastBookings.SetLastBookingID(ctx, req.SessionID.String(), *resp.Session.BookingPublicID); err != nil {
			uc.logger.Warn("ConfirmBooking: failed to store last booking id: %v", err)
		}
	}

	return resp, nil
}

// lookupExisting выполняет протокол поиска дубликата по email
// Любой сбой трактуется как отсутствие дубликата: лучше рискнуть
// повторным бронированием, чем заблокировать посетителя
func (uc *UseCase) lookupExisting(ctx context.Context, email string) *domain.ExistingBooking {
	exists, err := uc.platform.CheckBookingExists(ctx, email)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: duplicate check failed, proceeding with create: %v", err)
		return nil
	}
	if !exists {
		return nil
	}

	existing, err := uc.platform.GetBookingByEmail(ctx, email)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: duplicate details fetch failed, proceeding with create: %v", err)
		return nil
	}
	if existing == nil {
		// Бронирование числится, но деталей нет - создаем как обычно
		uc.logger.Warn("ConfirmBooking: booking exists for email but details are missing")
		return nil
	}
	return existing.ToDomain()
}

// createBooking отправляет платформе запрос на создание бронирования
func (uc *UseCase) createBooking(ctx context.Context, session *domain.Session) (*bookingapi.Booking, error) {
	tourTime := session.SelectedTime.String()

	return uc.platform.CreateBooking(ctx, &bookingapi.CreateBookingRequest{
		CustomerName:      session.Name,
		CustomerEmail:     session.Email,
		TourDate:          session.TourDate.Format(domain.DateFormat),
		TourTime:          tourTime,
		TourTitle:         uc.titles.ResolveTitle(ctx, tourTime),
		NumPeople:         session.Guests,
		PotentialBigGroup: session.HasSelectedOver6,
	})
}

// handleCreateError обрабатывает ошибку создания бронирования
// Ошибки вместимости возвращают мастер к выбору времени и коммитятся,
// остальные ошибки откатывают транзакцию
func (uc *UseCase) handleCreateError(ctx context.Context, session *domain.Session, err error, resp **Response) error {
	if bookingapi.IsCapacityError(err) {
		message := msgFullyBooked
		var availableSpots *int

		var spotsErr *bookingapi.InsufficientSpotsError
		if errors.As(err, &spotsErr) {
			message = fmt.Sprintf(msgSpotsRemaining, spotsErr.AvailableSpots)
			availableSpots = ptr.Ptr(spotsErr.AvailableSpots)
		}

		uc.logger.Warn("ConfirmBooking: capacity error for session id=%s: %v", session.ID, err)

		if err := session.ForceReselectTime(); err != nil {
			return ErrInvalidTransition
		}
		session.UpdatedAt = uc.timeProvider.Now()
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		*resp = &Response{
			Outcome:        OutcomeReselectTime,
			Session:        session,
			Message:        message,
			AvailableSpots: availableSpots,
			Slots:          uc.refetchSlots(ctx, session),
		}
		return nil
	}

	switch {
	case errors.Is(err, bookingapi.ErrValidation):
		uc.logger.Warn("ConfirmBooking: platform rejected booking for session id=%s: %v", session.ID, err)
		return fmt.Errorf("%w: %v", ErrPlatformRejected, err)
	case errors.Is(err, bookingapi.ErrNetwork):
		uc.logger.Error("ConfirmBooking: platform unreachable for session id=%s: %v", session.ID, err)
		return ErrPlatformUnavailable
	default:
		uc.logger.Error("ConfirmBooking: create failed for session id=%s: %v", session.ID, err)
		return fmt.Errorf("%w: create failed: %v", ErrInternal, err)
	}
}

// refetchSlots запрашивает свежую доступность после ошибки вместимости
// Сбой не критичен: мастер уже возвращен к выбору времени
func (uc *UseCase) refetchSlots(ctx context.Context, session *domain.Session) []domain.AvailabilitySlot {
	if session.TourDate == nil {
		return nil
	}

	raw, err := uc.platform.CheckAvailability(ctx, session.TourDate.Format(domain.DateFormat), nil)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: availability refetch failed: %v", err)
		return nil
	}

	slots := make([]domain.AvailabilitySlot, 0, len(raw))
	for _, dto := range raw {
		slots = append(slots, dto.ToDomain())
	}
	return domain.FilterStartable(slots, session.Guests, *session.TourDate, uc.timeProvider.Now(), uc.venueLoc, uc.cutoff)
}
