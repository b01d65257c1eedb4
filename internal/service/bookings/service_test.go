package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/internal/domain"
	bookingRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/booking"
	"github.com/ameleshkina/consult-booking/internal/service/bookings/models"
	"github.com/ameleshkina/consult-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	byID     map[int64]*domain.Booking
	byClient []*domain.Booking

	confirmErr error
	confirmed  []int64

	cancelErr     error
	cancelled     []int64
	cancelReasons []string

	updateStatusErr error
	statusUpdates   map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		byID:          map[int64]*domain.Booking{},
		statusUpdates: map[int64]domain.BookingStatus{},
	}
	for _, b := range bookings {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byClient {
		if b.ClientID == nil || *b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ConfirmPayment(_ context.Context, id int64, amount *float64) error {
	if f.confirmErr != nil {
		return f.confirmErr
	}
	f.confirmed = append(f.confirmed, id)
	if b, ok := f.byID[id]; ok {
		b.Status = domain.StatusConfirmed
		b.Amount = amount
		b.PaidAt = ptr.Ptr(time.Now())
	}
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	b, ok := f.byID[id]
	if !ok || b.Status != from {
		// Условный UPDATE не затронул ни одной строки
		return bookingRepo.ErrBookingNotFound
	}
	f.statusUpdates[id] = to
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	b, ok := f.byID[id]
	if !ok || !b.CanBeCancelled() {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	f.cancelReasons = append(f.cancelReasons, reason)
	return nil
}

type recordingNotifier struct {
	confirmed []int64
	cancelled []int64
}

func (n *recordingNotifier) PaymentConfirmed(_ context.Context, booking *domain.Booking) {
	n.confirmed = append(n.confirmed, booking.ID)
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, booking *domain.Booking) {
	n.cancelled = append(n.cancelled, booking.ID)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	owner    = domain.Actor{ID: 42, Role: domain.RoleClient}
	admin    = domain.Actor{ID: 1, Role: domain.RoleAdmin}
	stranger = domain.Actor{ID: 99, Role: domain.RoleClient}
)

func makeBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		ClientID:    ptr.Ptr(int64(42)),
		ClientName:  "Анна",
		ClientPhone: "+79001234567",
		BookingDate: time.Date(2026, 6, 15, 0, 0, 0, 0, domain.PractitionerTZ),
		StartTime:   "14:00",
		Status:      status,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("owner reads own booking", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed)), &recordingNotifier{}, nopLogger{})

		resp, err := svc.GetByID(context.Background(), 7, owner)
		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "14:00", resp.StartTime)
	})

	t.Run("admin reads any booking", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed)), &recordingNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 7, admin)
		assert.NoError(t, err)
	})

	t.Run("stranger gets access denied, not not-found", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed)), &recordingNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 7, stranger)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking is not found even for stranger", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(), &recordingNotifier{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), 7, stranger)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetClientBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byClient = []*domain.Booking{
		makeBooking(1, domain.StatusConfirmed),
		makeBooking(2, domain.StatusCancelled),
	}

	t.Run("owner reads own history", func(t *testing.T) {
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			Actor:    owner,
			ClientID: 42,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("status filter applied", func(t *testing.T) {
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			Actor:    owner,
			ClientID: 42,
			Status:   ptr.Ptr("cancelled"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "cancelled", resp.Bookings[0].Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			Actor:    owner,
			ClientID: 42,
			Status:   ptr.Ptr("no_show"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			Actor:    stranger,
			ClientID: 42,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin reads any history", func(t *testing.T) {
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			Actor:    admin,
			ClientID: 42,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Run("pending booking becomes confirmed", func(t *testing.T) {
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusPendingPayment))
		notifier := &recordingNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		resp, err := svc.ConfirmPayment(context.Background(), 7, &models.ConfirmPaymentRequest{
			Actor:  owner,
			Amount: ptr.Ptr(3500.0),
		})
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
		assert.NotNil(t, resp.PaidAt)
		assert.Equal(t, []int64{7}, repo.confirmed)
		assert.Equal(t, []int64{7}, notifier.confirmed)
	})

	t.Run("already confirmed rejected", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed)), &recordingNotifier{}, nopLogger{})

		_, err := svc.ConfirmPayment(context.Background(), 7, &models.ConfirmPaymentRequest{Actor: owner})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("cancelled rejected", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusCancelled)), &recordingNotifier{}, nopLogger{})

		_, err := svc.ConfirmPayment(context.Background(), 7, &models.ConfirmPaymentRequest{Actor: owner})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("concurrent status change mapped to invalid status", func(t *testing.T) {
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusPendingPayment))
		repo.confirmErr = bookingRepo.ErrBookingNotFound
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		_, err := svc.ConfirmPayment(context.Background(), 7, &models.ConfirmPaymentRequest{Actor: owner})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusPendingPayment)), &recordingNotifier{}, nopLogger{})

		_, err := svc.ConfirmPayment(context.Background(), 7, &models.ConfirmPaymentRequest{Actor: stranger})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("owner cancels pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusPendingPayment))
		notifier := &recordingNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
			Actor:              owner,
			CancellationReason: "изменились планы",
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{7}, repo.cancelled)
		assert.Equal(t, []string{"изменились планы"}, repo.cancelReasons)
		assert.Equal(t, []int64{7}, notifier.cancelled)
	})

	t.Run("admin cancels confirmed booking", func(t *testing.T) {
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed))
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{Actor: admin})
		assert.NoError(t, err)
	})

	t.Run("terminal statuses cannot be cancelled", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
			svc := NewService(newFakeBookingRepo(makeBooking(7, status)), &recordingNotifier{}, nopLogger{})

			err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{Actor: admin})
			assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
		}
	})

	t.Run("concurrent transition to terminal status blocks cancel", func(t *testing.T) {
		// Бронирование завершилось между чтением и условным UPDATE
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed))
		repo.cancelErr = bookingRepo.ErrBookingNotFound
		notifier := &recordingNotifier{}
		svc := NewService(repo, notifier, nopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{Actor: admin})
		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, notifier.cancelled)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusPendingPayment)), &recordingNotifier{}, nopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{Actor: stranger})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Complete(t *testing.T) {
	t.Run("admin completes confirmed booking", func(t *testing.T) {
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed))
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		resp, err := svc.Complete(context.Background(), 7, admin)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCompleted), resp.Status)
		assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[7])
	})

	t.Run("non-admin denied even for own booking", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed)), &recordingNotifier{}, nopLogger{})

		_, err := svc.Complete(context.Background(), 7, owner)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("only confirmed can be completed", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{domain.StatusPendingPayment, domain.StatusCancelled, domain.StatusCompleted} {
			svc := NewService(newFakeBookingRepo(makeBooking(7, status)), &recordingNotifier{}, nopLogger{})

			_, err := svc.Complete(context.Background(), 7, admin)
			assert.ErrorIs(t, err, ErrInvalidStatus, "status %s", status)
		}
	})

	t.Run("concurrent status change mapped to invalid status", func(t *testing.T) {
		// Бронирование отменили между чтением и условным UPDATE
		repo := newFakeBookingRepo(makeBooking(7, domain.StatusConfirmed))
		repo.updateStatusErr = bookingRepo.ErrBookingNotFound
		svc := NewService(repo, &recordingNotifier{}, nopLogger{})

		_, err := svc.Complete(context.Background(), 7, admin)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Empty(t, repo.statusUpdates)
	})

	t.Run("missing booking not found", func(t *testing.T) {
		svc := NewService(newFakeBookingRepo(), &recordingNotifier{}, nopLogger{})

		_, err := svc.Complete(context.Background(), 7, admin)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
