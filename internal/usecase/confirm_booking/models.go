package confirm_booking

import (
	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// Outcome исход подтверждения бронирования
type Outcome string

const (
	// OutcomeCreated бронирование создано
	OutcomeCreated Outcome = "created"

	// OutcomeDuplicateFound найдено существующее бронирование, новое не создано
	OutcomeDuplicateFound Outcome = "duplicate_found"

	// OutcomeReselectTime мест не хватило, мастер возвращен к выбору времени
	OutcomeReselectTime Outcome = "reselect_time"
)

// Request модель запроса подтверждения бронирования
type Request struct {
	SessionID uuid.UUID
	Name      string
	Email     string
}

// Response модель результата подтверждения
type Response struct {
	Outcome Outcome
	Session *domain.Session

	// Message сообщение для посетителя (исходы duplicate_found и reselect_time)
	Message string

	// AvailableSpots оставшиеся места, когда группе их не хватило
	AvailableSpots *int

	// Slots свежая доступность после возврата к выбору времени
	Slots []domain.AvailabilitySlot
}
