package block

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ameleshkina/consult-booking/internal/domain"
	"github.com/ameleshkina/consult-booking/pkg/dbmetrics"
	"github.com/ameleshkina/consult-booking/pkg/psqlbuilder"
	"github.com/ameleshkina/consult-booking/pkg/types"
)

// onConflictUpdateReason upsert по уникальной паре (slot_date, slot_time):
// повторная блокировка того же слота обновляет причину, а не падает
const onConflictUpdateReason = "ON CONFLICT (slot_date, slot_time) DO UPDATE SET reason = EXCLUDED.reason RETURNING id, slot_date, slot_time, reason, created_at"

// Repository репозиторий для работы с блокировками слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert блокирует один слот (идемпотентно)
func (r *Repository) Upsert(ctx context.Context, date time.Time, slotTime types.TimeString, reason *string) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("slot_date", "slot_time", "reason").
		Values(date, slotTime, reason).
		Suffix(onConflictUpdateReason).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	blocked, err := r.scanBlockedSlot(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - scan blocked slot: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// UpsertBatch блокирует набор слотов одной командой.
// Один multi-row INSERT .. ON CONFLICT атомарен: либо заблокированы все
// слоты, либо ни одного; при ошибке повтор безопасен (upsert).
func (r *Repository) UpsertBatch(ctx context.Context, date time.Time, slotTimes []types.TimeString, reason *string) ([]*domain.BlockedSlot, error) {
	if len(slotTimes) == 0 {
		return []*domain.BlockedSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("blocked_slots").
		Columns("slot_date", "slot_time", "reason")

	for _, slotTime := range slotTimes {
		insertBuilder = insertBuilder.Values(date, slotTime, reason)
	}

	query, args, err := insertBuilder.Suffix(onConflictUpdateReason).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedSlots(rows)
}

// GetByDate получает все блокировки на дату, по возрастанию времени
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "slot_date", "slot_time", "reason", "created_at").
		From("blocked_slots").
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedSlots(rows)
}

// CountByDate возвращает количество заблокированных слотов на дату
func (r *Repository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("blocked_slots").
		Where(squirrel.Eq{"slot_date": date}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Delete снимает блокировку по ID.
// Отсутствующий ID не ошибка: намерение "слот не заблокирован"
// уже выполнено, операция идемпотентна.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBlockedSlot(row rowScanner) (*domain.BlockedSlot, error) {
	var blocked domain.BlockedSlot
	var createdAt sql.NullTime

	err := row.Scan(
		&blocked.ID,
		&blocked.SlotDate,
		&blocked.SlotTime,
		&blocked.Reason,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	blocked.CreatedAt = createdAt.Time
	return &blocked, nil
}

func (r *Repository) scanBlockedSlots(rows *sql.Rows) ([]*domain.BlockedSlot, error) {
	blockedSlots := make([]*domain.BlockedSlot, 0)

	for rows.Next() {
		blocked, err := r.scanBlockedSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockedSlots - scan row: %v", ErrScanRow, err)
		}
		blockedSlots = append(blockedSlots, blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedSlots - rows error: %v", ErrScanRow, err)
	}

	return blockedSlots, nil
}
