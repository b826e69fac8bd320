package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
	"github.com/amswalks/AWT-BookingFunnel/internal/service/bookings/models"
)

// Service сервис страниц управления бронированием
// Проксирует запросы к платформе бронирований и классифицирует ее ошибки
type Service struct {
	platform BookingPlatformClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(platform BookingPlatformClient, logger Logger) *Service {
	return &Service{
		platform: platform,
		logger:   logger,
	}
}

// GetByPublicID получает бронирование по публичному идентификатору
func (s *Service) GetByPublicID(ctx context.Context, websiteBookingID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByPublicID: fetching booking id=%s", websiteBookingID)

	booking, err := s.platform.GetBooking(ctx, websiteBookingID)
	if err != nil {
		return nil, s.classify("GetByPublicID", websiteBookingID, err)
	}

	domainBooking, err := booking.ToDomain()
	if err != nil {
		s.logger.Error("GetByPublicID: malformed booking id=%s: %v", websiteBookingID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - malformed booking: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(domainBooking), nil
}

// UpdateSchedule изменяет дату, время или размер группы бронирования
func (s *Service) UpdateSchedule(ctx context.Context, websiteBookingID string, req *models.UpdateScheduleRequest) (*models.BookingResponse, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	s.logger.Info("UpdateSchedule: updating booking id=%s", websiteBookingID)

	updated, err := s.platform.UpdateBooking(ctx, &bookingapi.UpdateBookingRequest{
		WebsiteBookingID: websiteBookingID,
		TourDate:         req.TourDate,
		TourTime:         req.TourTime,
		NumPeople:        req.NumPeople,
	})
	if err != nil {
		return nil, s.classify("UpdateSchedule", websiteBookingID, err)
	}

	domainBooking, err := updated.ToDomain()
	if err != nil {
		s.logger.Error("UpdateSchedule: malformed booking id=%s: %v", websiteBookingID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - malformed booking: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated booking id=%s", websiteBookingID)
	return models.FromDomainBooking(domainBooking), nil
}

// UpdateContact изменяет контактные данные бронирования
func (s *Service) UpdateContact(ctx context.Context, websiteBookingID string, req *models.UpdateContactRequest) (*models.BookingResponse, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	s.logger.Info("UpdateContact: updating booking id=%s", websiteBookingID)

	updated, err := s.platform.UpdateBooking(ctx, &bookingapi.UpdateBookingRequest{
		WebsiteBookingID: websiteBookingID,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		Country:          req.Country,
	})
	if err != nil {
		return nil, s.classify("UpdateContact", websiteBookingID, err)
	}

	domainBooking, err := updated.ToDomain()
	if err != nil {
		s.logger.Error("UpdateContact: malformed booking id=%s: %v", websiteBookingID, err)
		return nil, fmt.Errorf("%w: UpdateContact - malformed booking: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateContact: successfully updated booking id=%s", websiteBookingID)
	return models.FromDomainBooking(domainBooking), nil
}

// Cancel отменяет бронирование
// Пустая причина заменяется стандартной формулировкой
func (s *Service) Cancel(ctx context.Context, websiteBookingID string, reason string) (*models.CancelResponse, error) {
	if reason == "" {
		reason = domain.DefaultCancellationReason
	}

	s.logger.Info("Cancel: cancelling booking id=%s", websiteBookingID)

	result, err := s.platform.CancelBooking(ctx, websiteBookingID, reason)
	if err != nil {
		return nil, s.classify("Cancel", websiteBookingID, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled, success=%t", websiteBookingID, result.Success)
	return &models.CancelResponse{
		Success: result.Success,
		Message: result.Message,
	}, nil
}

// classify переводит ошибки платформы в ошибки сервиса
// Ошибки вместимости возвращаются как есть: они несут количество
// оставшихся мест и обрабатываются выше по стеку
func (s *Service) classify(op, websiteBookingID string, err error) error {
	switch {
	case errors.Is(err, bookingapi.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, websiteBookingID)
		return ErrBookingNotFound
	case bookingapi.IsCapacityError(err):
		s.logger.Warn("%s: capacity error for booking id=%s: %v", op, websiteBookingID, err)
		return err
	case errors.Is(err, bookingapi.ErrValidation):
		s.logger.Warn("%s: validation error for booking id=%s: %v", op, websiteBookingID, err)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, bookingapi.ErrNetwork):
		s.logger.Error("%s: platform unreachable for booking id=%s: %v", op, websiteBookingID, err)
		return ErrPlatformUnavailable
	default:
		s.logger.Error("%s: platform error for booking id=%s: %v", op, websiteBookingID, err)
		return fmt.Errorf("%w: %s - platform error: %v", ErrInternal, op, err)
	}
}
