package reschedule_booking

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
	msgFullyBooked    = "This time is fully booked. Please pick another time"
	msgSpotsRemaining = "Only %d spots remaining for this time. Please pick another time or reduce your group size"
)

// UseCase use case переноса существующего бронирования на новое время
//
// Протокол строго последовательный: отмена старого бронирования, затем
// создание нового. Причина отмены ссылается на новое расписание, заметка
// нового бронирования - на старое, телефон переносится со старого.
// Если создание проваливается, отмена НЕ компенсируется: посетитель
// остается с отмененным бронированием и открытым мастером
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

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: session id=%s", req.SessionID)

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if session.Step != domain.StepDuplicateFound || session.Existing == nil {
			uc.logger.Warn("RescheduleBooking: session id=%s has no duplicate to reschedule", req.SessionID)
			return ErrInvalidTransition
		}
		if session.TourDate == nil || session.SelectedTime == nil {
			return ErrInvalidTransition
		}

		old := session.Existing
		newDate := session.TourDate.Format(domain.DateFormat)
		newTime := session.SelectedTime.String()

		// 1. Отменяем старое бронирование
		if err := uc.cancelOld(ctx, old, newDate, newTime); err != nil {
			return err
		}

		// 2. Создаем новое бронирование
		created, err := uc.createNew(ctx, session, old, newDate, newTime)
		if err != nil {
			return uc.handleCreateError(ctx, session, err, &resp)
		}

		// 3. Переносим страну со старого бронирования, если новое осталось без нее
		uc.propagateCountry(ctx, created, old)

		// 4. Завершаем сессию
		if err := session.MarkRescheduled(created.WebsiteBookingID); err != nil {
			return ErrInvalidTransition
		}
		session.UpdatedAt = uc.timeProvider.Now()
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		uc.logger.Info("RescheduleBooking: booking id=%s rescheduled to %s at %s (was %s at %s)",
			created.WebsiteBookingID, newDate, newTime, old.Date, old.Time)
		resp = &Response{
			Outcome: OutcomeRescheduled,
			Session: session,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Outcome == OutcomeRescheduled && resp.Session.BookingPublicID != nil {
		if err := uc.lastBookings.SetLastBookingID(ctx, req.SessionID.String(), *resp.Session.BookingPublicID); err != nil {
			uc.logger.Warn("RescheduleBooking: failed to store last booking id: %v", err)
		}
	}

	return resp, nil
}

// cancelOld отменяет старое бронирование с причиной, ссылающейся на новое расписание
// Уже исчезнувшее бронирование отменой не считается и перенос не блокирует
func (uc *UseCase) cancelOld(ctx context.Context, old *domain.ExistingBooking, newDate, newTime string) error {
	reason := fmt.Sprintf("Rescheduled to %s at %s", newDate, newTime)

	if _, err := uc.platform.CancelBooking(ctx, old.BookingCode, reason); err != nil {
		if errors.Is(err, bookingapi.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: old booking id=%s already gone, proceeding", old.BookingCode)
			return nil
		}
		if errors.Is(err, bookingapi.ErrNetwork) {
			uc.logger.Error("RescheduleBooking: platform unreachable during cancel: %v", err)
			return ErrPlatformUnavailable
		}
		uc.logger.Error("RescheduleBooking: cancel of booking id=%s failed: %v", old.BookingCode, err)
		return fmt.Errorf("%w: %v", ErrCancelFailed, err)
	}
	return nil
}

// createNew создает замещающее бронирование
// Телефон переносится со старого бронирования, заметка фиксирует старое расписание
func (uc *UseCase) createNew(ctx context.Context, session *domain.Session, old *domain.ExistingBooking, newDate, newTime string) (*bookingapi.Booking, error) {
	phone := old.CustomerPhone
	if phone == "" {
		phone = session.Phone
	}

	return uc.platform.CreateBooking(ctx, &bookingapi.CreateBookingRequest{
		CustomerName:      session.Name,
		CustomerEmail:     session.Email,
		CustomerPhone:     phone,
		TourDate:          newDate,
		TourTime:          newTime,
		TourTitle:         uc.titles.ResolveTitle(ctx, newTime),
		NumPeople:         session.Guests,
		Notes:             fmt.Sprintf("Rescheduled from %s at %s", old.Date, old.Time),
		PotentialBigGroup: session.HasSelectedOver6,
	})
}

// propagateCountry дотягивает страну со старого бронирования отдельным обновлением
// Сбой не критичен: бронирование уже создано
func (uc *UseCase) propagateCountry(ctx context.Context, created *bookingapi.Booking, old *domain.ExistingBooking) {
	if old.Country == "" || created.Country != "" {
		return
	}

	if _, err := uc.platform.UpdateBooking(ctx, &bookingapi.UpdateBookingRequest{
		WebsiteBookingID: created.WebsiteBookingID,
		Country:          ptr.Ptr(old.Country),
	}); err != nil {
		uc.logger.Warn("RescheduleBooking: country propagation failed for booking id=%s: %v",
			created.WebsiteBookingID, err)
	}
}

// handleCreateError обрабатывает ошибку создания замещающего бронирования
// Ошибки вместимости возвращают мастер к выбору времени, прочие оставляют
// его на экране дубликата; отмена старого бронирования уже произошла
func (uc *UseCase) handleCreateError(ctx context.Context, session *domain.Session, err error, resp **Response) error {
	if bookingapi.IsCapacityError(err) {
		message := msgFullyBooked
		var availableSpots *int

		var spotsErr *bookingapi.InsufficientSpotsError
		if errors.As(err, &spotsErr) {
			message = fmt.Sprintf(msgSpotsRemaining, spotsErr.AvailableSpots)
			availableSpots = ptr.Ptr(spotsErr.AvailableSpots)
		}

		uc.logger.Warn("RescheduleBooking: capacity error for session id=%s: %v", session.ID, err)

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
		uc.logger.Warn("RescheduleBooking: platform rejected new booking: %v", err)
		return fmt.Errorf("%w: %v", ErrPlatformRejected, err)
	case errors.Is(err, bookingapi.ErrNetwork):
		uc.logger.Error("RescheduleBooking: platform unreachable during create: %v", err)
		return ErrPlatformUnavailable
	default:
		uc.logger.Error("RescheduleBooking: create failed: %v", err)
		return fmt.Errorf("%w: create failed: %v", ErrInternal, err)
	}
}

// refetchSlots запрашивает свежую доступность после ошибки вместимости
func (uc *UseCase) refetchSlots(ctx context.Context, session *domain.Session) []domain.AvailabilitySlot {
	if session.TourDate == nil {
		return nil
	}

	raw, err := uc.platform.CheckAvailability(ctx, session.TourDate.Format(domain.DateFormat), nil)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: availability refetch failed: %v", err)
		return nil
	}

	slots := make([]domain.AvailabilitySlot, 0, len(raw))
	for _, dto := range raw {
		slots = append(slots, dto.ToDomain())
	}
	return domain.FilterStartable(slots, session.Guests, *session.TourDate, uc.timeProvider.Now(), uc.venueLoc, uc.cutoff)
}
