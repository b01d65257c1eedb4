package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/dbmetrics"
	"github.com/ameleshkina/consult-booking/pkg/psqlbuilder"
)

// singletonID настройки расписания хранятся единственной строкой
const singletonID = 1

// Repository репозиторий для работы с настройками расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает текущие настройки расписания
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"work_start",
		"work_end",
		"session_duration_minutes",
		"updated_at",
	).
		From("schedule_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.ScheduleSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.WorkStart,
		&settings.WorkEnd,
		&settings.SessionDurationMinutes,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time
	return &settings, nil
}

// Update перезаписывает настройки расписания (upsert единственной строки)
func (r *Repository) Update(ctx context.Context, settings *domain.ScheduleSettings) (*domain.ScheduleSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_settings").
		Columns("id", "work_start", "work_end", "session_duration_minutes", "updated_at").
		Values(singletonID, settings.WorkStart, settings.WorkEnd, settings.SessionDurationMinutes, squirrel.Expr("NOW()")).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			session_duration_minutes = EXCLUDED.session_duration_minutes,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	settings.UpdatedAt = updatedAt.Time
	return settings, nil
}
