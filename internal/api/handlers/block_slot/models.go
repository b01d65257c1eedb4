package block_slot

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date     string  `json:"date"`     // "2026-06-15"
	SlotTime string  `json:"slotTime"` // "14:00"
	Reason   *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockSlotRequest) ToServiceRequest(actor domain.Actor) (*models.BlockSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.SlotTime)
	if err != nil {
		return nil, err
	}

	return &models.BlockSlotRequest{
		Actor:    actor,
		Date:     date,
		SlotTime: slotTime,
		Reason:   r.Reason,
	}, nil
}
