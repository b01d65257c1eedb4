package blocks

import "errors"

var (
	// ErrAccessDenied возвращается, когда актор не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateOutOfRange возвращается при попытке заблокировать прошедшую дату
	ErrDateOutOfRange = errors.New("date is out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
