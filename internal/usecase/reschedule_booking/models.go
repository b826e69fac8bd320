package reschedule_booking

import (
	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// Outcome исход переноса бронирования
type Outcome string

const (
	// OutcomeRescheduled старое бронирование отменено, новое создано
	OutcomeRescheduled Outcome = "rescheduled"

	// OutcomeReselectTime мест на новое время не хватило, мастер возвращен
	// к выбору времени (старое бронирование уже отменено)
	OutcomeReselectTime Outcome = "reselect_time"
)

// Request модель запроса переноса бронирования
type Request struct {
	SessionID uuid.UUID
}

// Response модель результата переноса
type Response struct {
	Outcome Outcome
	Session *domain.Session

	// Message сообщение для посетителя (исход reselect_time)
	Message string

	// AvailableSpots оставшиеся места, когда группе их не хватило
	AvailableSpots *int

	// Slots свежая доступность после возврата к выбору времени
	Slots []domain.AvailabilitySlot
}
