package confirm_booking

import (
	"fmt"
	"strings"

	"github.com/amswalks/AWT-BookingFunnel/pkg/validate"
)

// validateRequest проверяет контактные данные посетителя
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidName
	}
	if !validate.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}
	return nil
}
