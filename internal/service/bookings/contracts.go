package bookings

import (
	"context"

	"github.com/ameleshkina/consult-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ConfirmPayment(ctx context.Context, id int64, amount *float64) error
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Notifier отправляет уведомления о событиях бронирования.
// Доставка best-effort: ошибки каналов логируются внутри и не возвращаются.
type Notifier interface {
	PaymentConfirmed(ctx context.Context, booking *domain.Booking)
	BookingCancelled(ctx context.Context, booking *domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
