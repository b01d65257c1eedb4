package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Сообщения для клиентов и администратора
const (
	subjectBookingCreated     = "Заявка на консультацию принята"
	subjectPaymentConfirmed   = "Консультация подтверждена"
	subjectBookingRescheduled = "Консультация перенесена"
	subjectBookingCancelled   = "Консультация отменена"
)

// Dispatcher рассылает уведомления о событиях бронирования по всем
// настроенным каналам. Доставка best-effort: отказ одного канала не
// мешает остальным и никогда не возвращается вызывающему коду.
type Dispatcher struct {
	telegram    TelegramSender
	mailer      MailSender
	adminChatID int64
	logger      Logger
}

// NewDispatcher создает новый диспетчер уведомлений.
// Каналы опциональны: nil-канал просто пропускается.
func NewDispatcher(telegram TelegramSender, mailer MailSender, adminChatID int64, logger Logger) *Dispatcher {
	return &Dispatcher{
		telegram:    telegram,
		mailer:      mailer,
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// BookingCreated уведомляет клиента и администратора о новой заявке
func (d *Dispatcher) BookingCreated(ctx context.Context, booking *domain.Booking) {
	clientText := fmt.Sprintf(
		"Ваша заявка на консультацию %s в %s принята. Бронь будет подтверждена после оплаты.",
		formatDate(booking.BookingDate), booking.StartTime)
	adminText := fmt.Sprintf(
		"Новая заявка #%d: %s, %s в %s, ожидает оплаты.",
		booking.ID, booking.ClientName, formatDate(booking.BookingDate), booking.StartTime)

	d.deliver(ctx, booking, subjectBookingCreated, clientText, adminText)
}

// PaymentConfirmed уведомляет об успешной оплате
func (d *Dispatcher) PaymentConfirmed(ctx context.Context, booking *domain.Booking) {
	clientText := fmt.Sprintf(
		"Оплата получена. Ждём вас на консультации %s в %s.",
		formatDate(booking.BookingDate), booking.StartTime)
	adminText := fmt.Sprintf(
		"Бронь #%d оплачена: %s, %s в %s.",
		booking.ID, booking.ClientName, formatDate(booking.BookingDate), booking.StartTime)

	d.deliver(ctx, booking, subjectPaymentConfirmed, clientText, adminText)
}

// BookingRescheduled уведомляет о переносе на другой слот
func (d *Dispatcher) BookingRescheduled(ctx context.Context, booking *domain.Booking, oldDate time.Time, oldTime types.TimeString) {
	clientText := fmt.Sprintf(
		"Ваша консультация перенесена с %s %s на %s %s.",
		formatDate(oldDate), oldTime, formatDate(booking.BookingDate), booking.StartTime)
	adminText := fmt.Sprintf(
		"Бронь #%d (%s) перенесена: %s %s -> %s %s.",
		booking.ID, booking.ClientName,
		formatDate(oldDate), oldTime, formatDate(booking.BookingDate), booking.StartTime)

	d.deliver(ctx, booking, subjectBookingRescheduled, clientText, adminText)
}

// BookingCancelled уведомляет об отмене
func (d *Dispatcher) BookingCancelled(ctx context.Context, booking *domain.Booking) {
	clientText := fmt.Sprintf(
		"Ваша консультация %s в %s отменена.",
		formatDate(booking.BookingDate), booking.StartTime)
	adminText := fmt.Sprintf(
		"Бронь #%d (%s) на %s в %s отменена.",
		booking.ID, booking.ClientName, formatDate(booking.BookingDate), booking.StartTime)
	if booking.CancellationReason != nil && *booking.CancellationReason != "" {
		adminText += fmt.Sprintf(" Причина: %s.", *booking.CancellationReason)
	}

	d.deliver(ctx, booking, subjectBookingCancelled, clientText, adminText)
}

// deliver отправляет уведомление по каждому доступному каналу.
// Каналы независимы: ошибка одного логируется и не влияет на другие.
func (d *Dispatcher) deliver(ctx context.Context, booking *domain.Booking, subject, clientText, adminText string) {
	if d.telegram != nil && d.adminChatID != 0 {
		if err := d.telegram.SendMessage(ctx, d.adminChatID, adminText); err != nil {
			d.logger.Warn("deliver: admin telegram notification for booking id=%d failed: %v", booking.ID, err)
		}
	}

	if d.telegram != nil && booking.ClientTelegramChatID != nil {
		if err := d.telegram.SendMessage(ctx, *booking.ClientTelegramChatID, clientText); err != nil {
			d.logger.Warn("deliver: client telegram notification for booking id=%d failed: %v", booking.ID, err)
		}
	}

	if d.mailer != nil && booking.ClientEmail != nil && *booking.ClientEmail != "" {
		if err := d.mailer.Send(ctx, *booking.ClientEmail, subject, clientText); err != nil {
			d.logger.Warn("deliver: email notification for booking id=%d failed: %v", booking.ID, err)
		}
	}
}

func formatDate(date time.Time) string {
	return date.Format(domain.DateFormat)
}
