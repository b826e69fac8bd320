package request_private_tour

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("request_private_tour: session not found")

	// ErrInvalidTransition возвращается, когда сессия не на контактном шаге приватного тура
	ErrInvalidTransition = errors.New("request_private_tour: session is not at the private tour contact step")

	// ErrInvalidName возвращается при пустом имени
	ErrInvalidName = errors.New("request_private_tour: name is required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("request_private_tour: invalid email address")

	// ErrInvalidPhone возвращается при пустом телефоне
	ErrInvalidPhone = errors.New("request_private_tour: phone is required")

	// ErrUnknownCountry возвращается при пустом или неизвестном идентификаторе страны
	ErrUnknownCountry = errors.New("request_private_tour: unknown country")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_private_tour: internal error")
)
