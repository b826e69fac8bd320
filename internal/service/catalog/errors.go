package catalog

import "errors"

var (
	// ErrPlatformUnavailable возвращается, когда каталог недоступен ни в кеше, ни на платформе
	ErrPlatformUnavailable = errors.New("tour time catalog is unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
