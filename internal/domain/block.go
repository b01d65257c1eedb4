package domain

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// BlockedSlot represents admin-imposed unavailability of a single slot.
// Уникален по паре (slot_date, slot_time); повторная блокировка
// обновляет причину (upsert).
type BlockedSlot struct {
	ID        int64
	SlotDate  time.Time
	SlotTime  types.TimeString
	Reason    *string
	CreatedAt time.Time
}
