package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ameleshkina/consult-booking/internal/domain"
	settingsRepo "github.com/ameleshkina/consult-booking/internal/infra/storage/settings"
	"github.com/ameleshkina/consult-booking/internal/service/settings/models"
)

// Service сервис настроек расписания
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки расписания. Пока администратор их не
// сохранял, действуют настройки по умолчанию.
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			defaults := domain.DefaultScheduleSettings()
			return models.FromDomainSettings(&defaults), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update заменяет настройки расписания. Доступно только администратору.
// Смена настроек влияет на сетку слотов будущих дней; уже созданные
// бронирования не пересчитываются.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: actor=%d, workStart=%s, workEnd=%s, duration=%d",
		req.Actor.ID, req.WorkStart, req.WorkEnd, req.SessionDurationMinutes)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("Update: actor=%d is not an admin", req.Actor.ID)
		return nil, ErrAccessDenied
	}

	if err := validateSettings(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, req.ToDomainSettings())
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, workStart=%s, workEnd=%s, duration=%d",
		updated.WorkStart, updated.WorkEnd, updated.SessionDurationMinutes)
	return models.FromDomainSettings(updated), nil
}

// validateSettings проверяет рабочее окно и длительность сессии
func validateSettings(req *models.UpdateSettingsRequest) error {
	if req.WorkStart.IsZero() || req.WorkEnd.IsZero() {
		return fmt.Errorf("%w: workStart and workEnd are required", ErrInvalidInput)
	}

	if err := req.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workStart: %v", ErrInvalidInput, err)
	}
	if err := req.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: invalid workEnd: %v", ErrInvalidInput, err)
	}

	if !req.WorkStart.IsBefore(req.WorkEnd) {
		return fmt.Errorf("%w: workStart must be before workEnd", ErrInvalidInput)
	}

	if req.SessionDurationMinutes < domain.MinSessionDurationMinutes ||
		req.SessionDurationMinutes > domain.MaxSessionDurationMinutes {
		return fmt.Errorf("%w: sessionDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSessionDurationMinutes, domain.MaxSessionDurationMinutes)
	}

	return nil
}
