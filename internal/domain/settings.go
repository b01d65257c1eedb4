package domain

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// ScheduleSettings represents the practitioner's working-hours configuration.
// Singleton: хранится одной записью, меняется только администратором.
type ScheduleSettings struct {
	WorkStart              types.TimeString
	WorkEnd                types.TimeString
	SessionDurationMinutes int
	UpdatedAt              time.Time
}

// DefaultScheduleSettings возвращает настройки по умолчанию
func DefaultScheduleSettings() ScheduleSettings {
	return ScheduleSettings{
		WorkStart:              types.TimeString(DefaultWorkStart),
		WorkEnd:                types.TimeString(DefaultWorkEnd),
		SessionDurationMinutes: DefaultSessionDurationMinutes,
	}
}
