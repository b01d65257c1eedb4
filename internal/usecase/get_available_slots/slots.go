package get_available_slots

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// filterAvailable вычитает из теоретических слотов занятые и
// заблокированные, затем применяет минимальный lead time:
// слот доступен, только если его начало не раньше now + MinLeadTimeMinutes.
// Порядок входного списка (по возрастанию) сохраняется.
func filterAvailable(
	allSlots []types.TimeString,
	date time.Time,
	bookings []*domain.Booking,
	blocked []*domain.BlockedSlot,
	now time.Time,
) []types.TimeString {
	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.OccupiesSlot() {
			occupied[b.StartTime] = struct{}{}
		}
	}
	for _, bl := range blocked {
		occupied[bl.SlotTime] = struct{}{}
	}

	minStart := now.Add(domain.MinLeadTimeMinutes * time.Minute)

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := occupied[slot]; taken {
			continue
		}

		instant, err := domain.SlotInstant(date, slot)
		if err != nil {
			continue
		}
		if instant.Before(minStart) {
			continue
		}

		available = append(available, slot)
	}

	return available
}
