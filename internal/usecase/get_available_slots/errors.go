package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	// (раньше сегодня или дальше горизонта в 30 дней)
	ErrDateOutOfRange = errors.New("get_available_slots: date is out of booking range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
