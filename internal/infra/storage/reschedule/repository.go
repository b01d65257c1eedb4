package reschedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/dbmetrics"
	"github.com/ameleshkina/consult-booking/pkg/psqlbuilder"
)

// Repository репозиторий истории переносов.
// Таблица append-only: записи создаются при каждом успешном переносе
// и никогда не изменяются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории переносов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись истории переноса.
// Вызывается в той же транзакции, что и перенос бронирования.
func (r *Repository) Append(ctx context.Context, entry *domain.RescheduleHistoryEntry) (*domain.RescheduleHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reschedule_history").
		Columns(
			"booking_id",
			"old_date",
			"old_time",
			"new_date",
			"new_time",
			"rescheduled_by",
			"reason",
		).
		Values(
			entry.BookingID,
			entry.OldDate,
			entry.OldTime,
			entry.NewDate,
			entry.NewTime,
			entry.RescheduledBy,
			entry.Reason,
		).
		Suffix("RETURNING id, rescheduled_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var rescheduledAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &rescheduledAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.RescheduledAt = rescheduledAt.Time
	return entry, nil
}

// GetByBookingID возвращает историю переносов бронирования,
// от новых записей к старым
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.RescheduleHistoryEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"old_date",
		"old_time",
		"new_date",
		"new_time",
		"rescheduled_by",
		"reason",
		"rescheduled_at",
	).
		From("reschedule_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("rescheduled_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.RescheduleHistoryEntry, 0)

	for rows.Next() {
		var entry domain.RescheduleHistoryEntry
		var rescheduledAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.BookingID,
			&entry.OldDate,
			&entry.OldTime,
			&entry.NewDate,
			&entry.NewTime,
			&entry.RescheduledBy,
			&entry.Reason,
			&rescheduledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		entry.RescheduledAt = rescheduledAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
