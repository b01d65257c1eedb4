package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	bookingRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/booking"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// UseCase use case для переноса бронирования на другой слот
type UseCase struct {
	bookingRepo    BookingRepository
	blockRepo      BlockRepository
	settingsRepo   SettingsRepository
	rescheduleRepo RescheduleRepository
	txManager      TransactionManager
	notifier       Notifier
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	rescheduleRepo RescheduleRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		blockRepo:      blockRepo,
		settingsRepo:   settingsRepo,
		rescheduleRepo: rescheduleRepo,
		txManager:      txManager,
		notifier:       notifier,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет перенос бронирования. Проверка статуса, доступность
// целевого слота, перенос и запись в журнал выполняются в одной
// сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, actor=%d(%s), newDate=%s, newTime=%s",
		req.BookingID, req.Actor.ID, req.Actor.Role,
		req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в календаре специалиста
	now := uc.timeProvider.Now().In(domain.PractitionerTZ)

	// 3. Проверка окна бронирования для новой даты
	if err := validateDateWindow(req.NewDate, now); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	newDate := domain.CivilDate(req.NewDate)

	var (
		oldDate time.Time
		oldTime types.TimeString
		moved   *domain.Booking
	)

	// 4. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Бронирование: сначала существование, затем доступ
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !req.Actor.CanAccessBooking(booking) {
			uc.logger.Warn("RescheduleBooking: actor id=%d denied access to booking id=%d",
				req.Actor.ID, req.BookingID)
			return ErrAccessDenied
		}

		// 4.2. Перенос возможен только из активных статусов
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d in status %s cannot be rescheduled",
				booking.ID, booking.Status)
			return fmt.Errorf("%w: current status is %s", ErrInvalidStatus, booking.Status)
		}

		// 4.3. Настройки расписания и сетка слотов
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("RescheduleBooking: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}
			defaults := domain.DefaultScheduleSettings()
			settings = &defaults
		}

		if err := validateSlotInGrid(req.NewStartTime, domain.SlotsForDay(*settings)); err != nil {
			uc.logger.Warn("RescheduleBooking: slot grid validation failed: %v", err)
			return err
		}

		if err := validateLeadTime(newDate, req.NewStartTime, now); err != nil {
			uc.logger.Warn("RescheduleBooking: lead time validation failed: %v", err)
			return err
		}

		// 4.4. Занятость целевого дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.DayBookingsFilter{
			StartDate: &newDate,
			EndDate:   &newDate,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocked, err := uc.blockRepo.GetByDate(txCtx, newDate)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		if err := checkSlotFree(booking.ID, req.NewStartTime, bookings, blocked); err != nil {
			uc.logger.Warn("RescheduleBooking: %v", err)
			return err
		}

		oldDate = booking.BookingDate
		oldTime = booking.StartTime

		// 4.5. Перенос
		if err := uc.bookingRepo.Reschedule(txCtx, booking.ID, newDate, req.NewStartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleBooking: slot %s %s taken concurrently",
					newDate.Format(domain.DateFormat), req.NewStartTime)
				return fmt.Errorf("%w: slot was taken concurrently", ErrSlotNotAvailable)
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		// 4.6. Запись в журнал переносов той же транзакцией
		if _, err := uc.rescheduleRepo.Append(txCtx, &domain.RescheduleHistoryEntry{
			BookingID:     booking.ID,
			OldDate:       oldDate,
			OldTime:       oldTime,
			NewDate:       newDate,
			NewTime:       req.NewStartTime,
			RescheduledBy: req.Actor.ID,
			Reason:        req.Reason,
		}); err != nil {
			uc.logger.Error("RescheduleBooking: failed to append history for booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		updated := *booking
		updated.BookingDate = newDate
		updated.StartTime = req.NewStartTime
		moved = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved %s %s -> %s %s",
		moved.ID, oldDate.Format(domain.DateFormat), oldTime,
		newDate.Format(domain.DateFormat), req.NewStartTime)

	// 5. Уведомления после коммита, best-effort
	uc.notifier.BookingRescheduled(ctx, moved, oldDate, oldTime)

	return &Response{
		ID:           moved.ID,
		ClientID:     moved.ClientID,
		ClientName:   moved.ClientName,
		BookingDate:  moved.BookingDate,
		StartTime:    moved.StartTime,
		Status:       string(moved.Status),
		OldDate:      oldDate,
		OldStartTime: oldTime,
	}, nil
}
