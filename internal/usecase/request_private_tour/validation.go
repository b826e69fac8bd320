package request_private_tour

import (
	"fmt"
	"strings"

	"github.com/amswalks/AWT-BookingFunnel/internal/domain"
	"github.com/amswalks/AWT-BookingFunnel/pkg/validate"
)

// validateRequest проверяет форму заявки на приватный тур
// В отличие от обычного потока здесь телефон и страна обязательны:
// менеджер связывается с группой напрямую
func validateRequest(req *Request) (*domain.Country, string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, "", ErrInvalidName
	}
	if !validate.IsValidEmail(req.Email) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	country := domain.FindCountry(req.CountryID)
	if country == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownCountry, req.CountryID)
	}

	phone := validate.SanitizePhone(req.Phone)
	if phone == "" {
		return nil, "", ErrInvalidPhone
	}

	return country, phone, nil
}
