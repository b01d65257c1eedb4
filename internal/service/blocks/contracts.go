package blocks

import (
	"context"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// BlockRepository интерфейс репозитория блокировок слотов
type BlockRepository interface {
	Upsert(ctx context.Context, date time.Time, slotTime types.TimeString, reason *string) (*domain.BlockedSlot, error)
	UpsertBatch(ctx context.Context, date time.Time, slotTimes []types.TimeString, reason *string) ([]*domain.BlockedSlot, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.ScheduleSettings, error)
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
