package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameleshkina/consult-booking/internal/domain"
	bookingRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/booking"
	"github.com/ameleshkina/consult-booking/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только своё бронирование, администратор - любое.
// Проверка существования выполняется до проверки доступа, чтобы
// отличать 404 от 403.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d(%s)", id, actor.ID, actor.Role)

	booking, err := s.getAccessible(ctx, "GetByID", id, actor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента.
// Опционально фильтрует по статусу. Клиент может смотреть только свою
// историю, администратор - любую.
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, actor=%d(%s), status=%v",
		req.ClientID, req.Actor.ID, req.Actor.Role, req.Status)

	if req.ClientID <= 0 {
		s.logger.Warn("GetClientBookings: invalid clientID=%d", req.ClientID)
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if !req.Actor.IsAdmin() && req.Actor.ID != req.ClientID {
		s.logger.Warn("GetClientBookings: actor=%d denied access to client=%d history",
			req.Actor.ID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// ConfirmPayment переводит бронирование из статуса ожидания оплаты в
// подтверждённое. Платёжный коллаборатор считается доверенным: сервис
// не проверяет сам факт оплаты.
func (s *Service) ConfirmPayment(ctx context.Context, bookingID int64, req *models.ConfirmPaymentRequest) (*models.BookingResponse, error) {
	s.logger.Info("ConfirmPayment: booking id=%d, actor=%d(%s)", bookingID, req.Actor.ID, req.Actor.Role)

	if req.Amount != nil && *req.Amount < 0 {
		s.logger.Warn("ConfirmPayment: negative amount for booking id=%d", bookingID)
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	booking, err := s.getAccessible(ctx, "ConfirmPayment", bookingID, req.Actor)
	if err != nil {
		return nil, err
	}

	if !booking.CanConfirmPayment() {
		s.logger.Warn("ConfirmPayment: booking id=%d in status %s, payment confirmation not allowed",
			bookingID, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrInvalidStatus, booking.Status)
	}

	if err := s.bookingRepo.ConfirmPayment(ctx, bookingID, req.Amount); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и обновлением
			s.logger.Warn("ConfirmPayment: booking id=%d left pending_payment concurrently", bookingID)
			return nil, fmt.Errorf("%w: booking is no longer awaiting payment", ErrInvalidStatus)
		}
		s.logger.Error("ConfirmPayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("ConfirmPayment: failed to reload booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmPayment - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("ConfirmPayment: booking id=%d confirmed", bookingID)

	// Уведомления best-effort
	s.notifier.PaymentConfirmed(ctx, updated)

	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование. Отмена - терминальный статус, повторная
// отмена и отмена завершённого бронирования невозможны. Слот
// освобождается для новых бронирований.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%d(%s)", bookingID, req.Actor.ID, req.Actor.Role)

	if len(req.CancellationReason) > domain.MaxReasonLength {
		s.logger.Warn("Cancel: reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	booking, err := s.getAccessible(ctx, "Cancel", bookingID, req.Actor)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел стать терминальным между чтением и обновлением
			s.logger.Warn("Cancel: booking id=%d left a cancellable status concurrently", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)

	cancelled := *booking
	cancelled.Status = domain.StatusCancelled
	if req.CancellationReason != "" {
		cancelled.CancellationReason = &req.CancellationReason
	}
	s.notifier.BookingCancelled(ctx, &cancelled)

	return nil
}

// Complete отмечает подтверждённое бронирование как завершённое.
// Доступно только администратору.
func (s *Service) Complete(ctx context.Context, bookingID int64, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("Complete: booking id=%d by actor=%d(%s)", bookingID, actor.ID, actor.Role)

	if !actor.IsAdmin() {
		s.logger.Warn("Complete: actor=%d is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d in status %s cannot be completed", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrInvalidStatus, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и обновлением
			s.logger.Warn("Complete: booking id=%d left confirmed concurrently", bookingID)
			return nil, fmt.Errorf("%w: booking is no longer confirmed", ErrInvalidStatus)
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: booking id=%d marked completed", bookingID)

	completed := *booking
	completed.Status = domain.StatusCompleted
	return models.FromDomainBooking(&completed), nil
}

// getAccessible загружает бронирование и применяет правило
// владелец-или-администратор. Отсутствие бронирования возвращается как
// ErrBookingNotFound до любых проверок доступа.
func (s *Service) getAccessible(ctx context.Context, method string, id int64, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if !actor.CanAccessBooking(booking) {
		s.logger.Warn("%s: actor=%d denied access to booking id=%d", method, actor.ID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
