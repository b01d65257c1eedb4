package block_day

import (
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
)

// BlockDayRequest HTTP request model
type BlockDayRequest struct {
	Date   string  `json:"date"` // "2026-06-15"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *BlockDayRequest) ToServiceRequest(actor domain.Actor) (*models.BlockDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.BlockDayRequest{
		Actor:  actor,
		Date:   date,
		Reason: r.Reason,
	}, nil
}
