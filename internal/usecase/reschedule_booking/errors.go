package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда актор не владеет бронированием и не администратор
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrInvalidStatus возвращается, когда бронирование в статусе, из которого перенос невозможен
	ErrInvalidStatus = errors.New("reschedule_booking: booking status does not allow reschedule")

	// ErrDateOutOfRange возвращается, когда новая дата вне окна бронирования
	ErrDateOutOfRange = errors.New("reschedule_booking: date is out of booking range")

	// ErrInvalidTimeSlot возвращается, когда новое время не совпадает со слотами расписания
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда до начала нового слота остаётся меньше часа
	ErrTooLateToBook = errors.New("reschedule_booking: too late to move to this slot")

	// ErrSlotNotAvailable возвращается, когда целевой слот занят или заблокирован
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
