package domain

import "time"

// Default schedule settings
const (
	DefaultWorkStart              = "10:00"
	DefaultWorkEnd                = "19:00"
	DefaultSessionDurationMinutes = 60
)

// Business validation constants
const (
	MinSessionDurationMinutes = 15
	MaxSessionDurationMinutes = 180

	// HorizonDays максимальная глубина бронирования: today .. today+30
	HorizonDays = 30

	// MinLeadTimeMinutes минимальный интервал между "сейчас" и началом слота
	MinLeadTimeMinutes = 60

	MaxNotesLength      = 500
	MaxReasonLength     = 500
	MaxClientNameLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PractitionerTZ фиксированный часовой пояс специалиста (UTC+3, без DST).
// Вся календарная арифметика ("сегодня", горизонт, lead time) ведется в нем.
var PractitionerTZ = time.FixedZone("UTC+3", 3*60*60)

// ActiveStatuses статусы, при которых бронирование занимает слот
var ActiveStatuses = []BookingStatus{
	StatusPendingPayment,
	StatusConfirmed,
	StatusCompleted,
}
