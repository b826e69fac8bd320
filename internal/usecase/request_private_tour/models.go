package request_private_tour

import (
	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// Request модель заявки на приватный тур
type Request struct {
	SessionID uuid.UUID
	Name      string
	Email     string
	Phone     string // В любом формате; нецифровые символы отбрасываются
	CountryID string // Идентификатор из справочника стран
}

// Response модель результата заявки
type Response struct {
	Session *domain.Session

	// RequestID идентификатор принятой заявки; пустой, если отправка не удалась
	RequestID string

	// Submitted true, если заявка дошла до платформы
	Submitted bool
}
