package update_settings

import (
	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/internal/service/settings/models"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	WorkStart              string `json:"workStart"`              // "10:00"
	WorkEnd                string `json:"workEnd"`                // "19:00"
	SessionDurationMinutes int    `json:"sessionDurationMinutes"` // 15..180
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(actor domain.Actor) (*models.UpdateSettingsRequest, error) {
	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}

	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}

	return &models.UpdateSettingsRequest{
		Actor:                  actor,
		WorkStart:              workStart,
		WorkEnd:                workEnd,
		SessionDurationMinutes: r.SessionDurationMinutes,
	}, nil
}
