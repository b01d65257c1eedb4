package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Service сервис административного управления блокировками слотов
type Service struct {
	blockRepo    BlockRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockRepo BlockRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		blockRepo:    blockRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// BlockSlot блокирует один слот. Повторная блокировка того же слота
// идемпотентна: обновляется только причина. Существующие брони на этот
// слот не трогаются.
func (s *Service) BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("BlockSlot: actor=%d, date=%s, time=%s",
		req.Actor.ID, req.Date.Format(domain.DateFormat), req.SlotTime)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("BlockSlot: actor=%d is not an admin", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	if err := s.validateSlotDate(req.Date); err != nil {
		s.logger.Warn("BlockSlot: date validation failed: %v", err)
		return nil, err
	}

	if req.SlotTime.IsZero() {
		return nil, fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}
	if err := req.SlotTime.Validate(); err != nil {
		s.logger.Warn("BlockSlot: invalid slotTime=%s: %v", req.SlotTime, err)
		return nil, fmt.Errorf("%w: invalid slotTime format: %v", ErrInvalidInput, err)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	blocked, err := s.blockRepo.Upsert(ctx, domain.CivilDate(req.Date), req.SlotTime, req.Reason)
	if err != nil {
		s.logger.Error("BlockSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: slot %s %s blocked, id=%d",
		blocked.SlotDate.Format(domain.DateFormat), blocked.SlotTime, blocked.ID)
	return models.FromDomainBlockedSlot(blocked), nil
}

// BlockDay блокирует все слоты указанного дня одной операцией.
// Сетка слотов берётся из текущих настроек расписания.
func (s *Service) BlockDay(ctx context.Context, req *models.BlockDayRequest) (*models.BlockedSlotListResponse, error) {
	s.logger.Info("BlockDay: actor=%d, date=%s", req.Actor.ID, req.Date.Format(domain.DateFormat))

	if !req.Actor.IsAdmin() {
		s.logger.Warn("BlockDay: actor=%d is not an admin", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	if err := s.validateSlotDate(req.Date); err != nil {
		s.logger.Warn("BlockDay: date validation failed: %v", err)
		return nil, err
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	settings, err := s.getSettings(ctx)
	if err != nil {
		s.logger.Error("BlockDay: failed to get settings: %v", err)
		return nil, err
	}

	slots := domain.SlotsForDay(*settings)
	if len(slots) == 0 {
		s.logger.Warn("BlockDay: schedule grid is empty, nothing to block")
		return &models.BlockedSlotListResponse{BlockedSlots: []models.BlockedSlotResponse{}}, nil
	}

	blocked, err := s.blockRepo.UpsertBatch(ctx, domain.CivilDate(req.Date), slots, req.Reason)
	if err != nil {
		s.logger.Error("BlockDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDay: %d slots blocked on %s", len(blocked), req.Date.Format(domain.DateFormat))
	return &models.BlockedSlotListResponse{BlockedSlots: models.FromDomainBlockedSlotList(blocked)}, nil
}

// UnblockSlot снимает блокировку по её ID. Операция идемпотентна:
// удаление несуществующей блокировки не является ошибкой.
func (s *Service) UnblockSlot(ctx context.Context, blockID int64, actor domain.Actor) error {
	s.logger.Info("UnblockSlot: actor=%d, block id=%d", actor.ID, blockID)

	if !actor.IsAdmin() {
		s.logger.Warn("UnblockSlot: actor=%d is not an admin", actor.ID)
		return ErrAccessDenied
	}

	if blockID <= 0 {
		return fmt.Errorf("%w: blockID must be positive", ErrInvalidInput)
	}

	if err := s.blockRepo.Delete(ctx, blockID); err != nil {
		s.logger.Error("UnblockSlot: repository error for block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: block id=%d removed", blockID)
	return nil
}

// GetDaySchedule возвращает административный обзор дня: все брони
// (включая отменённые), блокировки и признак полностью закрытого дня.
// День считается полностью закрытым, когда заблокирован каждый слот
// текущей сетки.
func (s *Service) GetDaySchedule(ctx context.Context, date time.Time, actor domain.Actor) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: actor=%d, date=%s", actor.ID, date.Format(domain.DateFormat))

	if !actor.IsAdmin() {
		s.logger.Warn("GetDaySchedule: actor=%d is not an admin", actor.ID)
		return nil, ErrAccessDenied
	}

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := domain.CivilDate(date)

	settings, err := s.getSettings(ctx)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to get settings: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.DayBookingsFilter{
		StartDate:       &day,
		EndDate:         &day,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: GetDaySchedule - failed to get bookings: %v", ErrInternal, err)
	}

	blocked, err := s.blockRepo.GetByDate(ctx, day)
	if err != nil {
		s.logger.Error("GetDaySchedule: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: GetDaySchedule - failed to get blocked slots: %v", ErrInternal, err)
	}

	slots := domain.SlotsForDay(*settings)
	fullyBlocked := len(slots) > 0 && countBlockedGridSlots(slots, blocked) == len(slots)

	s.logger.Info("GetDaySchedule: date=%s, bookings=%d, blocks=%d, fullyBlocked=%t",
		day.Format(domain.DateFormat), len(bookings), len(blocked), fullyBlocked)

	return &models.DayScheduleResponse{
		Date:                   day.Format(domain.DateFormat),
		SessionDurationMinutes: settings.SessionDurationMinutes,
		Bookings:               models.FromDomainDayBookings(bookings),
		BlockedSlots:           models.FromDomainBlockedSlotList(blocked),
		FullyBlocked:           fullyBlocked,
	}, nil
}

// countBlockedGridSlots считает, сколько слотов текущей сетки закрыто
// блокировками. Блокировки вне сетки (после смены настроек) признак
// полного закрытия не искажают.
func countBlockedGridSlots(slots []types.TimeString, blocked []*domain.BlockedSlot) int {
	blockedSet := make(map[types.TimeString]struct{}, len(blocked))
	for _, b := range blocked {
		blockedSet[b.SlotTime] = struct{}{}
	}

	count := 0
	for _, slot := range slots {
		if _, ok := blockedSet[slot]; ok {
			count++
		}
	}
	return count
}

// validateSlotDate запрещает блокировать прошедшие даты
func (s *Service) validateSlotDate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now().In(domain.PractitionerTZ)
	if domain.CivilDate(date).Before(domain.CivilDate(now)) {
		return fmt.Errorf("%w: date is in the past", ErrDateOutOfRange)
	}

	return nil
}

func (s *Service) getSettings(ctx context.Context) (*domain.ScheduleSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			defaults := domain.DefaultScheduleSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return settings, nil
}
