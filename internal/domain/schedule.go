package domain

import (
	"time"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

// SlotsForDay генерирует упорядоченный список времен начала слотов
// для одного дня по настройкам расписания.
//
// Слоты идут с шагом session_duration от work_start, пока
// slot_start + session_duration <= work_end; неполный хвостовой
// интервал отбрасывается. Чистая функция настроек: некорректные
// настройки (duration <= 0, start >= end) дают пустой список, не ошибку.
func SlotsForDay(settings ScheduleSettings) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if settings.SessionDurationMinutes <= 0 {
		return slots
	}

	start, err := settings.WorkStart.Minutes()
	if err != nil {
		return slots
	}
	end, err := settings.WorkEnd.Minutes()
	if err != nil {
		return slots
	}
	if start >= end {
		return slots
	}

	for m := start; m+settings.SessionDurationMinutes <= end; m += settings.SessionDurationMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// SlotInstant возвращает момент начала слота как инстант
// в фиксированном часовом поясе специалиста
func SlotInstant(date time.Time, slot types.TimeString) (time.Time, error) {
	m, err := slot.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, PractitionerTZ), nil
}

// CivilDate обнуляет время, оставляя календарную дату в поясе специалиста
func CivilDate(t time.Time) time.Time {
	local := t.In(PractitionerTZ)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, PractitionerTZ)
}
