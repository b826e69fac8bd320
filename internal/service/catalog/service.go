package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/infra/cache"
)

// Service сервис каталога времен туров
// Каталог практически статичен, поэтому кешируется в Redis с коротким TTL;
// промах кеша прозрачно уходит на платформу бронирований
type Service struct {
	platform     BookingPlatformClient
	cache        CatalogCache
	defaultTitle string
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(platform BookingPlatformClient, catalogCache CatalogCache, defaultTitle string, logger Logger) *Service {
	return &Service{
		platform:     platform,
		cache:        catalogCache,
		defaultTitle: defaultTitle,
		logger:       logger,
	}
}

// TourTimes возвращает каталог времен туров
func (s *Service) TourTimes(ctx context.Context) ([]domain.TourTime, error) {
	times, err := s.cache.GetTourTimes(ctx)
	if err == nil {
		return times, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		// Недоступный Redis не блокирует каталог, идем на платформу
		s.logger.Warn("TourTimes: cache read failed: %v", err)
	}

	raw, err := s.platform.ListTourTimes(ctx)
	if err != nil {
		s.logger.Error("TourTimes: platform request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	}

	times = make([]domain.TourTime, 0, len(raw))
	for _, t := range raw {
		times = append(times, domain.TourTime{
			TourTime:  t.TourTime,
			TourTitle: t.TourTitle,
		})
	}

	if err := s.cache.SetTourTimes(ctx, times); err != nil {
		s.logger.Warn("TourTimes: cache write failed: %v", err)
	}

	s.logger.Info("TourTimes: fetched %d tour times from platform", len(times))
	return times, nil
}

// ResolveTitle возвращает название тура для указанного времени
// Если каталог недоступен или время в нем не найдено, используется
// название тура по умолчанию
func (s *Service) ResolveTitle(ctx context.Context, tourTime string) string {
	times, err := s.TourTimes(ctx)
	if err != nil {
		s.logger.Warn("ResolveTitle: falling back to default title: %v", err)
		return s.defaultTitle
	}

	for _, t := range times {
		if t.TourTime == tourTime {
			return t.TourTitle
		}
	}
	return s.defaultTitle
}
