package enrich_contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/pkg/validate"
)

// UseCase use case опционального обогащения контактов после создания бронирования
//
// Телефон и страна дотягиваются на уже созданное бронирование одним
// обновлением. Шаг никогда не блокирует завершение: сбой обновления
// логируется, сессия все равно завершается
type UseCase struct {
	sessionRepo  SessionRepository
	platform     BookingPlatformClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	platform BookingPlatformClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		platform:     platform,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case обогащения контактов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EnrichContact: session id=%s", req.SessionID)

	// 1. Валидация страны (список в форме фиксированный, неизвестный id - ошибка клиента)
	var country *domain.Country
	if req.CountryID != "" {
		country = domain.FindCountry(req.CountryID)
		if country == nil {
			uc.logger.Warn("EnrichContact: unknown country id=%s", req.CountryID)
			return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, req.CountryID)
		}
	}

	phone := validate.SanitizePhone(req.Phone)

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if session.Step != domain.StepContactEnrichment || session.BookingPublicID == nil {
			uc.logger.Warn("EnrichContact: session id=%s not at enrichment step", req.SessionID)
			return ErrInvalidTransition
		}

		// 2. Отправляем платформе то, что посетитель заполнил
		updated := uc.pushUpdate(ctx, *session.BookingPublicID, phone, country)

		// 3. Завершаем сессию независимо от исхода обновления
		session.Phone = phone
		if country != nil {
			session.CountryID = country.ID
		}
		if err := session.CompleteEnrichment(); err != nil {
			return ErrInvalidTransition
		}
		session.UpdatedAt = uc.timeProvider.Now()
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		resp = &Response{
			Session: session,
			Updated: updated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("EnrichContact: session id=%s completed, updated=%t", req.SessionID, resp.Updated)
	return resp, nil
}

// pushUpdate отправляет телефон и страну на созданное бронирование
// Телефон уходит с префиксом телефонного кода выбранной страны.
// Возвращает true, если обновление дошло до платформы
func (uc *UseCase) pushUpdate(ctx context.Context, bookingID, phone string, country *domain.Country) bool {
	update := &bookingapi.UpdateBookingRequest{WebsiteBookingID: bookingID}

	if phone != "" {
		customerPhone := phone
		if country != nil {
			customerPhone = fmt.Sprintf("%s %s", country.Code, phone)
		}
		update.CustomerPhone = &customerPhone
	}
	if country != nil {
		name := country.Name
		update.Country = &name
	}

	if update.CustomerPhone == nil && update.Country == nil {
		// Посетитель пропустил шаг, обновлять нечего
		return false
	}

	if _, err := uc.platform.UpdateBooking(ctx, update); err != nil {
		uc.logger.Warn("EnrichContact: update of booking id=%s failed, completing anyway: %v", bookingID, err)
		return false
	}
	return true
}
