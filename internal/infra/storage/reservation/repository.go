package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/sqlerr"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
	sb sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, sb: sqlbuilder.New(dialect)}
}

// Create создает бронирование
// Существование слота не проверяет: вызывающий код уже получил слот через GetByID
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Insert("reservations").
		Columns(
			"slot_id",
			"first_name",
			"last_name",
			"phone",
			"quantity",
			"comment",
			"token",
			"created_at",
		).
		Values(
			res.SlotID,
			res.FirstName,
			res.LastName,
			res.Phone,
			res.Quantity,
			res.Comment,
			res.Token,
			res.CreatedAt.UTC().Unix(),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID)
	if sqlerr.IsUniqueViolation(err) {
		return nil, ErrDuplicateToken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByToken получает бронирование по токену вместе с данными слота и присутствия
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectReservations().
		Where(squirrel.Eq{"r.token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// UpdateByToken обновляет поля бронирования
// Возвращает число затронутых строк; 0 строк - не ошибка
func (r *Repository) UpdateByToken(ctx context.Context, token string, fields domain.ReservationFields) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Update("reservations").
		Set("first_name", fields.FirstName).
		Set("last_name", fields.LastName).
		Set("phone", fields.Phone).
		Set("quantity", fields.Quantity).
		Set("comment", fields.Comment).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: UpdateByToken - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdateByToken", query, args)
}

// DeleteByToken удаляет бронирование по токену
// Возвращает число удаленных строк; 0 строк - не ошибка
func (r *Repository) DeleteByToken(ctx context.Context, token string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete("reservations").
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByToken - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "DeleteByToken", query, args)
}

// DeleteByID удаляет бронирование по ID (административное удаление)
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByID - build delete query: %v", ErrBuildQuery, err)
	}

	deleted, err := r.exec(ctx, executor, "DeleteByID", query, args)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// List получает бронирования с фильтрацией по дате и месту
// Сортировка как у слотов: дата присутствия, место, начало слота
// Limit <= 0 заменяется на domain.DefaultReservationListLimit
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultReservationListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	selectBuilder := r.selectReservations()

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.date": *filter.Date})
	}
	if filter.Location != nil && *filter.Location != "" {
		selectBuilder = selectBuilder.Where(sqlbuilder.ContainsFold("p.location", *filter.Location))
	}

	query, args, err := selectBuilder.
		OrderBy("p.date ASC", "p.location ASC", "s.start_at ASC", "r.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func (r *Repository) selectReservations() squirrel.SelectBuilder {
	return r.sb.Select(
		"r.id",
		"r.slot_id",
		"r.first_name",
		"r.last_name",
		"r.phone",
		"r.quantity",
		"r.comment",
		"r.token",
		"r.created_at",
		"s.start_at",
		"s.presence_id",
		"p.location",
		"p.date",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Join("presences p ON p.id = s.presence_id")
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res       domain.Reservation
		comment   sql.NullString
		createdAt int64
		startAt   int64
	)

	err := row.Scan(
		&res.ID,
		&res.SlotID,
		&res.FirstName,
		&res.LastName,
		&res.Phone,
		&res.Quantity,
		&comment,
		&res.Token,
		&createdAt,
		&startAt,
		&res.PresenceID,
		&res.Location,
		&res.Date,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		res.Comment = &comment.String
	}
	res.CreatedAt = time.Unix(createdAt, 0).UTC()
	res.SlotStartAt = time.Unix(startAt, 0).UTC()

	return &res, nil
}
