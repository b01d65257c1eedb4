package get_day_schedule

import (
	"context"
	"time"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/internal/service/blocks/models"
)

type BlocksService interface {
	GetDaySchedule(ctx context.Context, date time.Time, actor domain.Actor) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
