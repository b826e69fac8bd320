package enrich_contact

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("enrich_contact: session not found")

	// ErrInvalidTransition возвращается, когда сессия не на шаге обогащения контактов
	ErrInvalidTransition = errors.New("enrich_contact: session is not at the enrichment step")

	// ErrUnknownCountry возвращается при неизвестном идентификаторе страны
	ErrUnknownCountry = errors.New("enrich_contact: unknown country")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("enrich_contact: internal error")
)
