package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/pkg/types"
)

func settingsFor(start, end string, duration int) ScheduleSettings {
	return ScheduleSettings{
		WorkStart:              types.TimeString(start),
		WorkEnd:                types.TimeString(end),
		SessionDurationMinutes: duration,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}

func TestSlotsForDay(t *testing.T) {
	t.Run("default working day yields hourly slots", func(t *testing.T) {
		slots := SlotsForDay(settingsFor("10:00", "19:00", 60))

		assert.Equal(t, []string{
			"10:00", "11:00", "12:00", "13:00", "14:00",
			"15:00", "16:00", "17:00", "18:00",
		}, slotStrings(slots))
	})

	t.Run("partial tail interval is dropped", func(t *testing.T) {
		// 09:00-12:30 при длительности 90 минут: слот 12:00 не помещается
		slots := SlotsForDay(settingsFor("09:00", "12:30", 90))

		assert.Equal(t, []string{"09:00", "10:30"}, slotStrings(slots))
	})

	t.Run("window shorter than session yields no slots", func(t *testing.T) {
		slots := SlotsForDay(settingsFor("10:00", "10:30", 60))
		assert.Empty(t, slots)
	})

	t.Run("invalid settings yield empty list", func(t *testing.T) {
		assert.Empty(t, SlotsForDay(settingsFor("19:00", "10:00", 60)))
		assert.Empty(t, SlotsForDay(settingsFor("10:00", "19:00", 0)))
		assert.Empty(t, SlotsForDay(settingsFor("bad", "19:00", 60)))
	})
}

func TestSlotInstant(t *testing.T) {
	date := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)

	instant, err := SlotInstant(date, "14:00")
	require.NoError(t, err)

	assert.Equal(t, 14, instant.Hour())
	assert.Equal(t, PractitionerTZ, instant.Location())
	// 14:00 в поясе специалиста (UTC+3) соответствует 11:00 UTC
	assert.Equal(t, 11, instant.UTC().Hour())

	_, err = SlotInstant(date, "garbage")
	assert.Error(t, err)
}

func TestCivilDate(t *testing.T) {
	t.Run("truncates time in practitioner timezone", func(t *testing.T) {
		instant := time.Date(2026, 5, 14, 18, 45, 12, 0, PractitionerTZ)

		civil := CivilDate(instant)

		assert.Equal(t, time.Date(2026, 5, 14, 0, 0, 0, 0, PractitionerTZ), civil)
	})

	t.Run("late UTC evening is already next day locally", func(t *testing.T) {
		// 22:30 UTC = 01:30 следующего дня в UTC+3
		instant := time.Date(2026, 5, 14, 22, 30, 0, 0, time.UTC)

		civil := CivilDate(instant)

		assert.Equal(t, 15, civil.Day())
	})
}
