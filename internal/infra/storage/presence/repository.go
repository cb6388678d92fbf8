package presence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
	"github.com/m04kA/SMC-PresenceBooking/pkg/types"
)

const (
	slotCountExpr = "(SELECT COUNT(*) FROM slots s WHERE s.presence_id = p.id) AS slot_count"

	reservationCountExpr = "(SELECT COUNT(*) FROM reservations r JOIN slots s ON s.id = r.slot_id " +
		"WHERE s.presence_id = p.id) AS reservation_count"
)

// Repository репозиторий для работы с присутствиями
type Repository struct {
	db DBExecutor
	sb sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория присутствий
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, sb: sqlbuilder.New(dialect)}
}

// Create создает присутствие (без слотов)
// Слоты создаются slot.Repository в той же транзакции
func (r *Repository) Create(ctx context.Context, p *domain.Presence) (*domain.Presence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert("presences").
		Columns("location", "date", "start_time", "end_time").
		Values(p.Location, p.Date, p.StartTime, p.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает присутствие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Presence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("id", "location", "date", "start_time", "end_time").
		From("presences").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Presence
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Location,
		&p.Date,
		&p.StartTime,
		&p.EndTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPresenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan presence: %v", ErrScanRow, err)
	}

	return &p, nil
}

// Update обновляет поля присутствия
// Слоты не трогает: перегенерацию выполняет вызывающий код в той же транзакции
func (r *Repository) Update(ctx context.Context, id int64, fields domain.PresenceFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Update("presences").
		Set("location", fields.Location).
		Set("date", fields.Date).
		Set("start_time", fields.StartTime).
		Set("end_time", fields.EndTime).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет присутствие, каскадно удаляя слоты и их бронирования
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete("presences").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// DeleteBefore удаляет все присутствия с датой строго раньше date
// Возвращает количество удаленных присутствий
func (r *Repository) DeleteBefore(ctx context.Context, date types.Date) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete("presences").
		Where(squirrel.Lt{"date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// CountReservations подсчитывает бронирования на слотах присутствия
func (r *Repository) CountReservations(ctx context.Context, id int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("COUNT(*)").
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(squirrel.Eq{"s.presence_id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountReservations - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountReservations - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListWithCounts получает все присутствия с количеством слотов и бронирований
// Сортировка: дата, место, время начала
func (r *Repository) ListWithCounts(ctx context.Context) ([]*domain.PresenceWithCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(
		"p.id",
		"p.location",
		"p.date",
		"p.start_time",
		"p.end_time",
		slotCountExpr,
		reservationCountExpr,
	).
		From("presences p").
		OrderBy("p.date ASC", "p.location ASC", "p.start_time ASC", "p.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	presences := make([]*domain.PresenceWithCounts, 0)
	for rows.Next() {
		var p domain.PresenceWithCounts
		if err := rows.Scan(
			&p.ID,
			&p.Location,
			&p.Date,
			&p.StartTime,
			&p.EndTime,
			&p.SlotCount,
			&p.ReservationCount,
		); err != nil {
			return nil, fmt.Errorf("%w: ListWithCounts - scan row: %v", ErrScanRow, err)
		}
		presences = append(presences, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithCounts - rows error: %v", ErrScanRow, err)
	}

	return presences, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrPresenceNotFound
	}

	return nil
}
