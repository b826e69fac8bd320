package handlers

import (
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	sessionModels "github.com/amswalks/AWT-BookingFunnel/internal/service/sessions/models"
)

// SessionResponse HTTP представление сессии мастера
// Используется всеми ручками мастера: каждая возвращает актуальное
// состояние после своего перехода
type SessionResponse struct {
	ID               string               `json:"id"`
	Step             string               `json:"step"`
	TourDate         *string              `json:"tourDate,omitempty"`
	Guests           int                  `json:"guests"`
	TimeSlotsShown   bool                 `json:"timeSlotsShown"`
	SelectedTime     *string              `json:"selectedTime,omitempty"`
	Name             string               `json:"name,omitempty"`
	Email            string               `json:"email,omitempty"`
	Phone            string               `json:"phone,omitempty"`
	CountryID        string               `json:"countryId,omitempty"`
	HasSelectedOver6 bool                 `json:"hasSelectedOver6"`
	PrivateGuests    int                  `json:"privateGuests,omitempty"`
	PrivatePrice     *PrivatePriceView    `json:"privatePrice,omitempty"`
	BookingID        *string              `json:"bookingId,omitempty"`
	ExistingBooking  *ExistingBookingView `json:"existingBooking,omitempty"`
}

// PrivatePriceView расчет стоимости частного тура
type PrivatePriceView struct {
	PerPerson float64 `json:"perPerson"`
	Total     float64 `json:"total"`
}

// ExistingBookingView найденное существующее бронирование
type ExistingBookingView struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Persons      int    `json:"persons"`
	BookingCode  string `json:"bookingCode"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Country      string `json:"country,omitempty"`
}

// SlotView доступное время тура
type SlotView struct {
	TourTime       string `json:"tourTime"`
	TourTitle      string `json:"tourTitle"`
	AvailableSpots int    `json:"availableSpots"`
	RunningLow     bool   `json:"runningLow"`
}

// FromSessionState конвертирует состояние сессии сервисного слоя в HTTP ответ
func FromSessionState(s *sessionModels.SessionState) *SessionResponse {
	resp := &SessionResponse{
		ID:               s.ID,
		Step:             s.Step,
		TourDate:         s.TourDate,
		Guests:           s.Guests,
		TimeSlotsShown:   s.TimeSlotsShown,
		SelectedTime:     s.SelectedTime,
		Name:             s.Name,
		Email:            s.Email,
		Phone:            s.Phone,
		CountryID:        s.CountryID,
		HasSelectedOver6: s.HasSelectedOver6,
		PrivateGuests:    s.PrivateGuests,
		BookingID:        s.BookingPublicID,
	}
	if s.PrivatePrice != nil {
		resp.PrivatePrice = &PrivatePriceView{
			PerPerson: s.PrivatePrice.PerPerson,
			Total:     s.PrivatePrice.Total,
		}
	}
	if s.Existing != nil {
		resp.ExistingBooking = &ExistingBookingView{
			Date:         s.Existing.Date,
			Time:         s.Existing.Time,
			Persons:      s.Existing.Persons,
			BookingCode:  s.Existing.BookingCode,
			CustomerName: s.Existing.CustomerName,
			Email:        s.Existing.Email,
			Phone:        s.Existing.Phone,
			Country:      s.Existing.Country,
		}
	}
	return resp
}

// FromDomainSession конвертирует доменную сессию в HTTP ответ
func FromDomainSession(s *domain.Session) *SessionResponse {
	return FromSessionState(sessionModels.FromDomainSession(s))
}

// FromDomainSlots конвертирует доменные слоты в HTTP представление
func FromDomainSlots(slots []domain.AvailabilitySlot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{
			TourTime:       s.TourTime,
			TourTitle:      s.TourTitle,
			AvailableSpots: s.AvailableSpots,
			RunningLow:     s.RunningLow(),
		})
	}
	return out
}
