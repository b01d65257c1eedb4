package reschedule_booking

import (
	"context"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, id int64, newDate time.Time, newTime types.TimeString) error
}

// BlockRepository интерфейс репозитория блокировок слотов
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
}

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
}

// RescheduleRepository интерфейс журнала переносов (append-only)
type RescheduleRepository interface {
	Append(ctx context.Context, entry *domain.RescheduleHistoryEntry) (*domain.RescheduleHistoryEntry, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомления о событиях бронирования.
// Доставка best-effort: ошибки каналов логируются внутри и не возвращаются.
type Notifier interface {
	BookingRescheduled(ctx context.Context, booking *domain.Booking, oldDate time.Time, oldTime types.TimeString)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
