package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/internal/integrations/bookingapi"
)

// UseCase use case получения доступных слотов на дату
// Доступность всегда запрашивается у платформы заново: остатки мест
// меняются между запросами, кешировать их нельзя
type UseCase struct {
	platform     BookingPlatformClient
	timeProvider TimeProvider
	venueLoc     *time.Location
	cutoff       time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	platform BookingPlatformClient,
	venueLoc *time.Location,
	cutoff time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		platform:     platform,
		timeProvider: &RealTimeProvider{},
		venueLoc:     venueLoc,
		cutoff:       cutoff,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, guests=%d",
		req.Date.Format(domain.DateFormat), req.Guests)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now, uc.venueLoc); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем доступность у платформы
	slots, err := uc.fetch(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	// 4. Фильтруем по размеру группы и отсечке площадки
	startable := domain.FilterStartable(slots, req.Guests, req.Date, now, uc.venueLoc, uc.cutoff)

	uc.logger.Info("GetAvailableSlots: %d of %d slots startable for date=%s, guests=%d",
		len(startable), len(slots), req.Date.Format(domain.DateFormat), req.Guests)

	return &Response{
		Date:  req.Date,
		Slots: buildSlots(startable),
	}, nil
}

// QuickDates строит быстрые варианты даты для первого шага мастера
// "Today" предлагается, только если сегодня остался хотя бы один слот,
// стартуемый для группы указанного размера
func (uc *UseCase) QuickDates(ctx context.Context, guests int) ([]QuickDate, error) {
	if guests < domain.MinGuests {
		guests = domain.MinGuests
	}

	now := uc.timeProvider.Now()
	today := venueMidnight(now, uc.venueLoc)

	slots, err := uc.fetch(ctx, today)
	if err != nil {
		return nil, err
	}

	startable := domain.FilterStartable(slots, guests, today, now, uc.venueLoc, uc.cutoff)
	return quickDateOptions(now, uc.venueLoc, len(startable) > 0), nil
}

// fetch запрашивает доступность на дату и конвертирует ее в доменные слоты
func (uc *UseCase) fetch(ctx context.Context, date time.Time) ([]domain.AvailabilitySlot, error) {
	raw, err := uc.platform.CheckAvailability(ctx, date.In(uc.venueLoc).Format(domain.DateFormat), nil)
	if err != nil {
		if errors.Is(err, bookingapi.ErrNetwork) {
			uc.logger.Error("GetAvailableSlots: platform unreachable: %v", err)
			return nil, ErrPlatformUnavailable
		}
		uc.logger.Error("GetAvailableSlots: availability request failed: %v", err)
		return nil, fmt.Errorf("%w: availability request failed: %v", ErrInternal, err)
	}

	slots := make([]domain.AvailabilitySlot, 0, len(raw))
	for _, dto := range raw {
		slots = append(slots, dto.ToDomain())
	}
	return slots, nil
}
