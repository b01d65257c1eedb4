package models

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек расписания
type UpdateSettingsRequest struct {
	Actor                  domain.Actor
	WorkStart              types.TimeString `json:"workStart"`              // "10:00"
	WorkEnd                types.TimeString `json:"workEnd"`                // "19:00"
	SessionDurationMinutes int              `json:"sessionDurationMinutes"` // 15..180
}

// Response модели

// SettingsResponse ответ с текущими настройками расписания
type SettingsResponse struct {
	WorkStart              string     `json:"workStart"`
	WorkEnd                string     `json:"workEnd"`
	SessionDurationMinutes int        `json:"sessionDurationMinutes"`
	UpdatedAt              *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.ScheduleSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		WorkStart:              s.WorkStart.String(),
		WorkEnd:                s.WorkEnd.String(),
		SessionDurationMinutes: s.SessionDurationMinutes,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// ToDomainSettings конвертирует запрос в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.ScheduleSettings {
	return &domain.ScheduleSettings{
		WorkStart:              r.WorkStart,
		WorkEnd:                r.WorkEnd,
		SessionDurationMinutes: r.SessionDurationMinutes,
	}
}
