package start_session

import (
	"github.com/amswalks/AWT-BookingFunnel/internal/api/handlers"
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	getAvailableSlots "github.com/amswalks/AWT-BookingFunnel/internal/usecase/get_available_slots"
)

// StartSessionResponse HTTP response model
type StartSessionResponse struct {
	Session    *handlers.SessionResponse `json:"session"`
	TourTimes  []TourTimeView            `json:"tourTimes"`
	QuickDates []QuickDateView           `json:"quickDates"`
}

// TourTimeView запись каталога времен туров
type TourTimeView struct {
	TourTime  string `json:"tourTime"`
	TourTitle string `json:"tourTitle"`
}

// QuickDateView быстрый вариант даты
type QuickDateView struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

func fromTourTimes(times []domain.TourTime) []TourTimeView {
	out := make([]TourTimeView, 0, len(times))
	for _, t := range times {
		out = append(out, TourTimeView{TourTime: t.TourTime, TourTitle: t.TourTitle})
	}
	return out
}

func fromQuickDates(dates []getAvailableSlots.QuickDate) []QuickDateView {
	out := make([]QuickDateView, 0, len(dates))
	for _, d := range dates {
		out = append(out, QuickDateView{Label: d.Label, Date: d.Date.Format(domain.DateFormat)})
	}
	return out
}
