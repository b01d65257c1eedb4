package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/internal/domain"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	"github.com/ameleshkina/consult-booking/pkg/ptr"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.BlockedSlot
	err    error
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.BlockedSlot, error) {
	return f.blocks, f.err
}

type fakeSettingsRepo struct {
	settings *domain.ScheduleSettings
	err      error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	return f.settings, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultSettings() *domain.ScheduleSettings {
	s := domain.DefaultScheduleSettings()
	return &s
}

func TestUseCase_Execute(t *testing.T) {
	// Утро за два дня до запрашиваемой даты, lead time не мешает
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, domain.PractitionerTZ)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, domain.PractitionerTZ)

	newUC := func(b *fakeBookingRepo, bl *fakeBlockRepo, s *fakeSettingsRepo) *UseCase {
		return NewUseCase(b, bl, s, nopLogger{}).WithTimeProvider(fixedTime{now})
	}

	t.Run("all slots free on empty day", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		// 10:00..18:00 при часовых сессиях до 19:00
		require.Len(t, resp.Slots, 9)
		assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
		assert.Equal(t, types.TimeString("18:00"), resp.Slots[8])
		assert.Equal(t, 60, resp.DurationMinutes)
	})

	t.Run("booked and blocked slots excluded", func(t *testing.T) {
		uc := newUC(
			&fakeBookingRepo{bookings: []*domain.Booking{
				{BookingDate: date, StartTime: "11:00", Status: domain.StatusConfirmed},
				{BookingDate: date, StartTime: "12:00", Status: domain.StatusCancelled},
			}},
			&fakeBlockRepo{blocks: []*domain.BlockedSlot{
				{SlotDate: date, SlotTime: "15:00", Reason: ptr.Ptr("обед")},
			}},
			&fakeSettingsRepo{settings: defaultSettings()},
		)

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("11:00"))
		assert.NotContains(t, resp.Slots, types.TimeString("15:00"))
		// Отменённая бронь слот не занимает
		assert.Contains(t, resp.Slots, types.TimeString("12:00"))
		assert.Len(t, resp.Slots, 7)
	})

	t.Run("lead time cuts off near slots for today", func(t *testing.T) {
		// Сейчас 13:30 - слот 14:00 уже недоступен, 15:00 ещё да
		lateNow := time.Date(2026, 3, 10, 13, 30, 0, 0, domain.PractitionerTZ)
		uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()}, nopLogger{}).
			WithTimeProvider(fixedTime{lateNow})

		resp, err := uc.Execute(context.Background(), &Request{Date: lateNow})
		require.NoError(t, err)

		assert.NotContains(t, resp.Slots, types.TimeString("14:00"))
		assert.Contains(t, resp.Slots, types.TimeString("15:00"))
		assert.Equal(t, types.TimeString("15:00"), resp.Slots[0])
	})

	t.Run("slot exactly at lead time boundary is offered", func(t *testing.T) {
		// Сейчас ровно 14:00 - слот 15:00 начинается ровно через час
		exactNow := time.Date(2026, 3, 10, 14, 0, 0, 0, domain.PractitionerTZ)
		uc := NewUseCase(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()}, nopLogger{}).
			WithTimeProvider(fixedTime{exactNow})

		resp, err := uc.Execute(context.Background(), &Request{Date: exactNow})
		require.NoError(t, err)

		assert.Equal(t, types.TimeString("15:00"), resp.Slots[0])
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()})

		_, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrDateOutOfRange)
	})

	t.Run("date beyond horizon rejected", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()})

		_, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, domain.HorizonDays+1)})
		assert.ErrorIs(t, err, ErrDateOutOfRange)

		// Ровно на границе горизонта - ещё можно
		_, err = uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, domain.HorizonDays)})
		assert.NoError(t, err)
	})

	t.Run("zero date rejected", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing settings fall back to defaults", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)
		assert.Len(t, resp.Slots, 9)
	})

	t.Run("custom session duration changes grid", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: &domain.ScheduleSettings{
			WorkStart:              "09:00",
			WorkEnd:                "12:00",
			SessionDurationMinutes: 90,
		}})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:00", "10:30"}, resp.Slots)
		assert.Equal(t, 90, resp.DurationMinutes)
	})

	t.Run("repository failure wrapped as internal", func(t *testing.T) {
		uc := newUC(&fakeBookingRepo{err: assert.AnError}, &fakeBlockRepo{}, &fakeSettingsRepo{settings: defaultSettings()})

		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
