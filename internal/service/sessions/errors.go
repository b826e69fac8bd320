package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidTransition возвращается при недопустимом переходе между шагами
	ErrInvalidTransition = errors.New("invalid step transition")

	// ErrSlotUnavailable возвращается, когда выбранное время недоступно для группы
	ErrSlotUnavailable = errors.New("time slot is not available")

	// ErrDateNotSelected возвращается, когда действие требует выбранной даты
	ErrDateNotSelected = errors.New("tour date is not selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
