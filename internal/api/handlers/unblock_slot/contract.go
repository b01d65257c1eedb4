package unblock_slot

import (
	"context"

	"github.com/ameleshkina/consult-booking/internal/domain"
)

type BlocksService interface {
	UnblockSlot(ctx context.Context, blockID int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
