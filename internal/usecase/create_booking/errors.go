package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования
	// (раньше сегодня или дальше горизонта в 30 дней)
	ErrDateOutOfRange = errors.New("create_booking: date is out of booking range")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним
	// слотом расписания на эту дату
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда до начала слота остаётся меньше часа
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или заблокирован
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
