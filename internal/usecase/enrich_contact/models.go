package enrich_contact

import (
	"github.com/google/uuid"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
)

// Request модель запроса обогащения контактов
// Оба поля опциональны: шаг можно пропустить целиком
type Request struct {
	SessionID uuid.UUID
	Phone     string // В любом формате; нецифровые символы отбрасываются
	CountryID string // Идентификатор из справочника стран ("nl", "us", ...)
}

// Response модель результата обогащения
type Response struct {
	Session *domain.Session

	// Updated true, если данные были отправлены платформе
	Updated bool
}
