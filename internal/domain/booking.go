package domain

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// Booking represents a consulting session booking
type Booking struct {
	ID int64

	// Клиент. ClientID заполнен только для зарегистрированных клиентов,
	// контактные данные денормализованы в самой записи.
	ClientID             *int64
	ClientName           string
	ClientPhone          string
	ClientEmail          *string
	ClientTelegramChatID *int64

	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	ProductID *int64
	Amount    *float64
	PaidAt    *time.Time
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking keeps its (date, time) slot taken.
// Only cancelled bookings release the slot.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// CanConfirmPayment returns true if payment confirmation is allowed
func (b *Booking) CanConfirmPayment() bool {
	return b.Status == StatusPendingPayment
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// IsOwnedBy проверяет принадлежность бронирования клиенту
func (b *Booking) IsOwnedBy(clientID int64) bool {
	return b.ClientID != nil && *b.ClientID == clientID
}

// DayBookingsFilter фильтр для выборки бронирований за день/период
type DayBookingsFilter struct {
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
