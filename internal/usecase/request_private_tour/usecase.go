package request_private_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionRepo "github.com/amswalks/AWT-BookingFunnel/internal/infra/storage/session"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/privatetours"
)

// UseCase use case заявки на приватный тур
//
// Отправка - fire-and-forget: любой сбой удаленного endpoint логируется,
// но мастер все равно переходит на экран подтверждения. Потерять заявку
// лучше, чем потерять группу на финальном шаге
type UseCase struct {
	sessionRepo  SessionRepository
	privateTours PrivateToursClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	privateTours PrivateToursClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		privateTours: privateTours,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case заявки на приватный тур
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestPrivateTour: session id=%s", req.SessionID)

	// 1. Валидация формы
	country, phone, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("RequestPrivateTour: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		if session.Step != domain.StepPrivateContact {
			uc.logger.Warn("RequestPrivateTour: session id=%s not at private contact step", req.SessionID)
			return ErrInvalidTransition
		}

		// 2. Отправляем заявку; сбой не останавливает мастер
		requestID, submitted := uc.submit(ctx, session, req, country, phone)

		// 3. Фиксируем контакты и завершаем ветку приватного тура
		session.Name = req.Name
		session.Email = req.Email
		session.Phone = phone
		session.CountryID = country.ID
		if err := session.MarkPrivateRequestSubmitted(); err != nil {
			return ErrInvalidTransition
		}
		session.UpdatedAt = uc.timeProvider.Now()
		if err := uc.sessionRepo.Update(ctx, session); err != nil {
			return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
		}

		resp = &Response{
			Session:   session,
			RequestID: requestID,
			Submitted: submitted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RequestPrivateTour: session id=%s confirmed, submitted=%t", req.SessionID, resp.Submitted)
	return resp, nil
}

// submit отправляет заявку на приватный тур
// Группа, оставшаяся в пределах стандартной вместимости, помечается как
// потенциально большая: размер приватной группы часто растет к дате тура
func (uc *UseCase) submit(ctx context.Context, session *domain.Session, req *Request, country *domain.Country, phone string) (string, bool) {
	payload := &privatetours.CreateRequestPayload{
		CustomerName:      req.Name,
		CustomerEmail:     req.Email,
		CustomerPhone:     fmt.Sprintf("%s %s", country.Code, phone),
		Country:           country.Name,
		NumberOfGuests:    session.PrivateGuests,
		PotentialBigGroup: session.PrivateGuests <= domain.StandardGroupCap,
	}
	if session.TourDate != nil {
		date := session.TourDate.Format(domain.DateFormat)
		payload.PreferredDate = &date
	}

	requestID, err := uc.privateTours.CreateRequest(ctx, payload)
	if err != nil {
		uc.logger.Error("RequestPrivateTour: submission failed for session id=%s, confirming anyway: %v",
			session.ID, err)
		return "", false
	}
	return requestID, true
}
