package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameleshkina/consult-booking/internal/domain"
	bookingRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/booking"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Доступность слота перепроверяется внутри сериализуемой транзакции;
// частичный уникальный индекс по (booking_date, start_time) даёт
// гарантию на момент коммита даже при конкурентных запросах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, date=%s, time=%s",
		req.ClientName, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в календаре специалиста
	now := uc.timeProvider.Now().In(domain.PractitionerTZ)

	// 3. Проверка окна бронирования
	if err := validateDateWindow(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	date := domain.CivilDate(req.Date)

	var (
		result          *domain.Booking
		sessionDuration int
	)

	// 4. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Настройки расписания (дефолтные, если ещё не сохранялись)
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateBooking: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}
			defaults := domain.DefaultScheduleSettings()
			settings = &defaults
		}
		sessionDuration = settings.SessionDurationMinutes

		// 4.2. Время должно попадать в сетку слотов
		if err := validateSlotInGrid(req.StartTime, domain.SlotsForDay(*settings)); err != nil {
			uc.logger.Warn("CreateBooking: slot grid validation failed: %v", err)
			return err
		}

		// 4.3. Минимальный lead time до начала слота
		if err := validateLeadTime(date, req.StartTime, now); err != nil {
			uc.logger.Warn("CreateBooking: lead time validation failed: %v", err)
			return err
		}

		// 4.4. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.DayBookingsFilter{
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocked, err := uc.blockRepo.GetByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocked slots: %v", err)
			return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
		}

		// 4.5. Проверяем доступность слота
		if err := checkSlotFree(req.StartTime, bookings, blocked); err != nil {
			uc.logger.Warn("CreateBooking: %v", err)
			return err
		}

		// 4.6. Создаем бронирование в статусе ожидания оплаты
		booking := &domain.Booking{
			ClientID:             req.ClientID,
			ClientName:           req.ClientName,
			ClientPhone:          req.ClientPhone,
			ClientEmail:          req.ClientEmail,
			ClientTelegramChatID: req.ClientTelegramChatID,
			BookingDate:          date,
			StartTime:            req.StartTime,
			Status:               domain.StatusPendingPayment,
			ProductID:            req.ProductID,
			Amount:               req.Amount,
			Notes:                req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная бронь успела первой - индекс отработал на коммите
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken concurrently",
					date.Format(domain.DateFormat), req.StartTime)
				return fmt.Errorf("%w: slot was taken concurrently", ErrSlotNotAvailable)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомления после коммита, best-effort
	uc.notifier.BookingCreated(ctx, result)

	return toResponse(result, sessionDuration), nil
}

func toResponse(b *domain.Booking, durationMinutes int) *Response {
	return &Response{
		ID:              b.ID,
		ClientID:        b.ClientID,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: durationMinutes,
		Status:          string(b.Status),
		ProductID:       b.ProductID,
		Amount:          b.Amount,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
