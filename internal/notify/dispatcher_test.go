package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/ptr"
)

type fakeTelegram struct {
	sent map[int64][]string
	err  error
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{sent: map[int64][]string{}}
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent[chatID] = append(f.sent[chatID], text)
	return nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const adminChat = int64(100500)

func makeBooking() *domain.Booking {
	return &domain.Booking{
		ID:                   7,
		ClientID:             ptr.Ptr(int64(42)),
		ClientName:           "Анна",
		ClientTelegramChatID: ptr.Ptr(int64(777)),
		ClientEmail:          ptr.Ptr("anna@example.com"),
		BookingDate:          time.Date(2026, 8, 10, 0, 0, 0, 0, domain.PractitionerTZ),
		StartTime:            "14:00",
		Status:               domain.StatusPendingPayment,
	}
}

func TestDispatcher_AllChannels(t *testing.T) {
	tg := newFakeTelegram()
	mail := &fakeMailer{}
	d := NewDispatcher(tg, mail, adminChat, nopLogger{})

	d.BookingCreated(context.Background(), makeBooking())

	require.Len(t, tg.sent[adminChat], 1)
	require.Len(t, tg.sent[777], 1)
	assert.Equal(t, []string{"anna@example.com"}, mail.sent)
}

func TestDispatcher_MissingClientChannels(t *testing.T) {
	tg := newFakeTelegram()
	mail := &fakeMailer{}
	d := NewDispatcher(tg, mail, adminChat, nopLogger{})

	b := makeBooking()
	b.ClientTelegramChatID = nil
	b.ClientEmail = nil
	d.PaymentConfirmed(context.Background(), b)

	// Администратор уведомлён, клиентских каналов нет
	assert.Len(t, tg.sent[adminChat], 1)
	assert.Empty(t, tg.sent[777])
	assert.Empty(t, mail.sent)
}

func TestDispatcher_ChannelFailureIsIsolated(t *testing.T) {
	tg := newFakeTelegram()
	tg.err = errors.New("telegram down")
	mail := &fakeMailer{}
	d := NewDispatcher(tg, mail, adminChat, nopLogger{})

	// Отказ Telegram не мешает email-каналу и ничего не паникует
	d.BookingCancelled(context.Background(), makeBooking())

	assert.Equal(t, []string{"anna@example.com"}, mail.sent)
}

func TestDispatcher_NilChannels(t *testing.T) {
	d := NewDispatcher(nil, nil, 0, nopLogger{})

	// Полностью выключенные уведомления безопасны
	d.BookingRescheduled(context.Background(), makeBooking(),
		time.Date(2026, 8, 9, 0, 0, 0, 0, domain.PractitionerTZ), "11:00")
}
