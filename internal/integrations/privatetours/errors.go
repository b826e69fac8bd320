package privatetours

import "errors"

var (
	// ErrIPBlacklisted возвращается, когда платформа отклонила запрос по IP
	ErrIPBlacklisted = errors.New("privatetours: request rejected, IP blacklisted")

	// ErrValidation возвращается при ошибке валидации на стороне платформы
	ErrValidation = errors.New("privatetours: validation error")

	// ErrNetwork возвращается при сетевой ошибке
	ErrNetwork = errors.New("privatetours: network error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("privatetours: invalid response")
)
