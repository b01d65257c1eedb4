package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ameleshkina/consult-booking/internal/domain"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
)

type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает свободные слоты на указанную дату.
// Слот свободен, если он не занят активной бронью, не заблокирован
// администратором и до его начала остаётся не меньше часа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[Execute] Invalid request: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(domain.PractitionerTZ)
	if err := validateDateWindow(req.Date, now); err != nil {
		uc.logger.Warn("[Execute] Date out of range: date=%s, err=%v",
			req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			// Настройки ещё не сохранялись - работаем по умолчанию
			defaults := domain.DefaultScheduleSettings()
			settings = &defaults
		} else {
			uc.logger.Error("[Execute] Failed to get schedule settings: %v", err)
			return nil, fmt.Errorf("%w: Execute - get settings: %v", ErrInternal, err)
		}
	}

	allSlots := domain.SlotsForDay(*settings)

	date := domain.CivilDate(req.Date)

	var (
		bookings []*domain.Booking
		blocked  []*domain.BlockedSlot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.GetWithFilter(gctx, domain.DayBookingsFilter{
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			return fmt.Errorf("get bookings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		blocked, err = uc.blockRepo.GetByDate(gctx, date)
		if err != nil {
			return fmt.Errorf("get blocked slots: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("[Execute] Failed to load day occupancy: date=%s, err=%v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Execute - load day occupancy: %v", ErrInternal, err)
	}

	available := filterAvailable(allSlots, date, bookings, blocked, now)

	uc.logger.Info("[Execute] Availability resolved: date=%s, total=%d, available=%d",
		date.Format(domain.DateFormat), len(allSlots), len(available))

	return &Response{
		Date:            date,
		DurationMinutes: settings.SessionDurationMinutes,
		Slots:           available,
	}, nil
}
