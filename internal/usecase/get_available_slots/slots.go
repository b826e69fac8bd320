package get_available_slots

import (
	"time"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// Метки быстрых вариантов даты
const (
	labelToday            = "Today"
	labelTomorrow         = "Tomorrow"
	labelDayAfterTomorrow = "Day after Tomorrow"
)

// buildSlots конвертирует доменные слоты в ответ usecase
func buildSlots(slots []domain.AvailabilitySlot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			TourTime:       s.TourTime,
			TourTitle:      s.TourTitle,
			AvailableSpots: s.AvailableSpots,
			RunningLow:     s.RunningLow(),
		})
	}
	return out
}

// quickDateOptions строит пару быстрых вариантов даты
// Пока на сегодня есть хотя бы один стартуемый слот, предлагаются
// "Today" и "Tomorrow"; после последней отсечки дня окно сдвигается
// на "Tomorrow" и "Day after Tomorrow"
func quickDateOptions(now time.Time, loc *time.Location, todayStartable bool) []QuickDate {
	today := venueMidnight(now, loc)

	if todayStartable {
		return []QuickDate{
			{Label: labelToday, Date: today},
			{Label: labelTomorrow, Date: today.AddDate(0, 0, 1)},
		}
	}
	return []QuickDate{
		{Label: labelTomorrow, Date: today.AddDate(0, 0, 1)},
		{Label: labelDayAfterTomorrow, Date: today.AddDate(0, 0, 2)},
	}
}
