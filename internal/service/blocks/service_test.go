package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
	"github.com/ameleshkina/consult-booking/pkg/ptr"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

type fakeBlockRepo struct {
	nextID  int64
	blocks  []*domain.BlockedSlot
	deleted []int64
}

func (f *fakeBlockRepo) Upsert(_ context.Context, date time.Time, slotTime types.TimeString, reason *string) (*domain.BlockedSlot, error) {
	for _, b := range f.blocks {
		if b.SlotDate.Equal(date) && b.SlotTime == slotTime {
			b.Reason = reason
			return b, nil
		}
	}
	f.nextID++
	b := &domain.BlockedSlot{ID: f.nextID, SlotDate: date, SlotTime: slotTime, Reason: reason, CreatedAt: time.Now()}
	f.blocks = append(f.blocks, b)
	return b, nil
}

func (f *fakeBlockRepo) UpsertBatch(ctx context.Context, date time.Time, slotTimes []types.TimeString, reason *string) ([]*domain.BlockedSlot, error) {
	out := make([]*domain.BlockedSlot, 0, len(slotTimes))
	for _, st := range slotTimes {
		b, _ := f.Upsert(ctx, date, st, reason)
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBlockRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	var out []*domain.BlockedSlot
	for _, b := range f.blocks {
		if b.SlotDate.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	for i, b := range f.blocks {
		if b.ID == id {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			break
		}
	}
	return nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.DayBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeSettingsRepo struct {
	settings domain.ScheduleSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.ScheduleSettings, error) {
	s := f.settings
	return &s, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin  = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	client = domain.Actor{ID: 42, Role: domain.RoleClient}
)

func newService(repo *fakeBlockRepo, bookings *fakeBookingRepo) *Service {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, domain.PractitionerTZ)
	return NewService(repo, bookings, &fakeSettingsRepo{settings: domain.DefaultScheduleSettings()}, nopLogger{}).
		WithTimeProvider(fixedTime{now})
}

func TestService_BlockSlot(t *testing.T) {
	date := time.Date(2026, 7, 3, 0, 0, 0, 0, domain.PractitionerTZ)

	t.Run("admin blocks a slot", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		resp, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor:    admin,
			Date:     date,
			SlotTime: "14:00",
			Reason:   ptr.Ptr("личные дела"),
		})
		require.NoError(t, err)

		assert.Equal(t, "14:00", resp.SlotTime)
		assert.Equal(t, "2026-07-03", resp.SlotDate)
		require.Len(t, repo.blocks, 1)
	})

	t.Run("repeat block updates reason only", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		first, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "14:00", Reason: ptr.Ptr("старая причина"),
		})
		require.NoError(t, err)

		second, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "14:00", Reason: ptr.Ptr("новая причина"),
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "новая причина", *second.Reason)
		assert.Len(t, repo.blocks, 1)
	})

	t.Run("client denied", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: client, Date: date, SlotTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("past date rejected", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor:    admin,
			Date:     time.Date(2026, 6, 30, 0, 0, 0, 0, domain.PractitionerTZ),
			SlotTime: "14:00",
		})
		assert.ErrorIs(t, err, ErrDateOutOfRange)
	})

	t.Run("bad time format rejected", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "25:70",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_BlockDay(t *testing.T) {
	date := time.Date(2026, 7, 3, 0, 0, 0, 0, domain.PractitionerTZ)

	t.Run("blocks every grid slot", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		resp, err := svc.BlockDay(context.Background(), &models.BlockDayRequest{
			Actor: admin, Date: date, Reason: ptr.Ptr("отпуск"),
		})
		require.NoError(t, err)

		// 10:00..18:00 при дефолтных настройках
		assert.Len(t, resp.BlockedSlots, 9)
		assert.Len(t, repo.blocks, 9)
	})

	t.Run("idempotent over existing blocks", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "12:00",
		})
		require.NoError(t, err)

		resp, err := svc.BlockDay(context.Background(), &models.BlockDayRequest{Actor: admin, Date: date})
		require.NoError(t, err)

		assert.Len(t, resp.BlockedSlots, 9)
		assert.Len(t, repo.blocks, 9)
	})

	t.Run("client denied", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		_, err := svc.BlockDay(context.Background(), &models.BlockDayRequest{Actor: client, Date: date})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_UnblockSlot(t *testing.T) {
	t.Run("removes block", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		date := time.Date(2026, 7, 3, 0, 0, 0, 0, domain.PractitionerTZ)
		blocked, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "14:00",
		})
		require.NoError(t, err)

		require.NoError(t, svc.UnblockSlot(context.Background(), blocked.ID, admin))
		assert.Empty(t, repo.blocks)
	})

	t.Run("missing block is a no-op", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		assert.NoError(t, svc.UnblockSlot(context.Background(), 12345, admin))
	})

	t.Run("client denied", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		assert.ErrorIs(t, svc.UnblockSlot(context.Background(), 1, client), ErrAccessDenied)
	})
}

func TestService_GetDaySchedule(t *testing.T) {
	date := time.Date(2026, 7, 3, 0, 0, 0, 0, domain.PractitionerTZ)

	t.Run("combines bookings and blocks", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		bookings := &fakeBookingRepo{bookings: []*domain.Booking{
			{ID: 1, ClientName: "Анна", BookingDate: date, StartTime: "11:00", Status: domain.StatusConfirmed},
			{ID: 2, ClientName: "Пётр", BookingDate: date, StartTime: "12:00", Status: domain.StatusCancelled},
		}}
		svc := newService(repo, bookings)

		_, err := svc.BlockSlot(context.Background(), &models.BlockSlotRequest{
			Actor: admin, Date: date, SlotTime: "15:00",
		})
		require.NoError(t, err)

		resp, err := svc.GetDaySchedule(context.Background(), date, admin)
		require.NoError(t, err)

		assert.Len(t, resp.Bookings, 2)
		assert.Len(t, resp.BlockedSlots, 1)
		assert.False(t, resp.FullyBlocked)
		assert.Equal(t, "2026-07-03", resp.Date)
	})

	t.Run("fully blocked when every grid slot is blocked", func(t *testing.T) {
		repo := &fakeBlockRepo{}
		svc := newService(repo, &fakeBookingRepo{})

		_, err := svc.BlockDay(context.Background(), &models.BlockDayRequest{Actor: admin, Date: date})
		require.NoError(t, err)

		resp, err := svc.GetDaySchedule(context.Background(), date, admin)
		require.NoError(t, err)
		assert.True(t, resp.FullyBlocked)
	})

	t.Run("client denied", func(t *testing.T) {
		svc := newService(&fakeBlockRepo{}, &fakeBookingRepo{})

		_, err := svc.GetDaySchedule(context.Background(), date, client)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
