package models

import (
	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// SessionState снимок состояния сессии мастера для слоя API
type SessionState struct {
	ID               string
	Step             string
	TourDate         *string
	Guests           int
	TimeSlotsShown   bool
	SelectedTime     *string
	Name             string
	Email            string
	Phone            string
	CountryID        string
	HasSelectedOver6 bool
	PrivateGuests    int
	PrivatePrice     *PrivatePrice
	BookingPublicID  *string
	Existing         *ExistingBookingInfo
}

// PrivatePrice расчет стоимости частного тура
type PrivatePrice struct {
	PerPerson float64
	Total     float64
}

// ExistingBookingInfo найденное ранее бронирование (дубликат по email)
type ExistingBookingInfo struct {
	Date         string
	Time         string
	Persons      int
	BookingCode  string
	CustomerName string
	Email        string
	Phone        string
	Country      string
}

// SetGuestsRequest запрос на изменение размера группы
// Advance = true продвигает мастер дальше (показ слотов или частный тур)
type SetGuestsRequest struct {
	Guests  int
	Advance bool
}

// FromDomainSession конвертирует domain.Session в SessionState
func FromDomainSession(s *domain.Session) *SessionState {
	state := &SessionState{
		ID:               s.ID.String(),
		Step:             string(s.Step),
		Guests:           s.Guests,
		TimeSlotsShown:   s.TimeSlotsShown,
		Name:             s.Name,
		Email:            s.Email,
		Phone:            s.Phone,
		CountryID:        s.CountryID,
		HasSelectedOver6: s.HasSelectedOver6,
		PrivateGuests:    s.PrivateGuests,
		BookingPublicID:  s.BookingPublicID,
	}

	if s.TourDate != nil {
		d := s.TourDate.Format(domain.DateFormat)
		state.TourDate = &d
	}
	if s.SelectedTime != nil {
		t := s.SelectedTime.String()
		state.SelectedTime = &t
	}
	if s.PrivateGuests > 0 {
		price := domain.CalcPrivateTourPrice(s.PrivateGuests)
		state.PrivatePrice = &PrivatePrice{
			PerPerson: price.PerPerson,
			Total:     price.Total,
		}
	}
	if s.Existing != nil {
		state.Existing = &ExistingBookingInfo{
			Date:         s.Existing.Date,
			Time:         s.Existing.Time,
			Persons:      s.Existing.Persons,
			BookingCode:  s.Existing.BookingCode,
			CustomerName: s.Existing.CustomerName,
			Email:        s.Existing.CustomerEmail,
			Phone:        s.Existing.CustomerPhone,
			Country:      s.Existing.Country,
		}
	}
	return state
}
