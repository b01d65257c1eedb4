package domain

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// RescheduleHistoryEntry captures one successful reschedule for auditing.
// Append-only: записи никогда не изменяются и не удаляются.
type RescheduleHistoryEntry struct {
	ID            int64
	BookingID     int64
	OldDate       time.Time
	OldTime       types.TimeString
	NewDate       time.Time
	NewTime       types.TimeString
	RescheduledBy int64
	Reason        *string
	RescheduledAt time.Time
}
