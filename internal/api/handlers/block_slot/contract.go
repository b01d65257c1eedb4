package block_slot

import (
	"context"

	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
)

type BlocksService interface {
	BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
