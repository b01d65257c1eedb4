package block_day

import (
	"context"

	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
)

type BlocksService interface {
	BlockDay(ctx context.Context, req *models.BlockDayRequest) (*models.BlockedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
