package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PresenceBooking/internal/domain"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
	sb sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor, dialect sqlbuilder.Dialect) *Repository {
	return &Repository{db: db, sb: sqlbuilder.New(dialect)}
}

// CreateForPresence вставляет слоты присутствия одним запросом
// Уже существующие (presence_id, start_at) пропускаются без ошибки,
// поэтому повторный вызов идемпотентен. Возвращает число вставленных строк.
func (r *Repository) CreateForPresence(ctx context.Context, presenceID int64, starts []time.Time) (int64, error) {
	if len(starts) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := r.sb.Insert("slots").Columns("presence_id", "start_at")
	for _, at := range starts {
		insert = insert.Values(presenceID, at.UTC().Unix())
	}

	query, args, err := insert.
		Suffix("ON CONFLICT (presence_id, start_at) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateForPresence - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateForPresence - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateForPresence - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// DeleteByPresence удаляет все слоты присутствия (каскадно вместе с бронированиями)
func (r *Repository) DeleteByPresence(ctx context.Context, presenceID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Delete("slots").
		Where(squirrel.Eq{"presence_id": presenceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPresence - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPresence - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPresence - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// LockByPresence блокирует строки слотов присутствия до конца транзакции
// Вставка бронирования в Postgres берет на слот FOR KEY SHARE и ждет снятия блокировки.
// SQLite сериализует запись на уровне базы, поэтому там это no-op
func (r *Repository) LockByPresence(ctx context.Context, presenceID int64) error {
	if r.sb.Dialect() != sqlbuilder.Postgres {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select("id").
		From("slots").
		Where(squirrel.Eq{"presence_id": presenceID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockByPresence - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LockByPresence - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: LockByPresence - iterate rows: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает слот с местом и датой присутствия
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSlots().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListUpcoming получает слоты, начинающиеся строго позже filter.From
// start_at хранится в целых секундах: start_at > floor(From) равносильно start_at > From
// Опционально фильтрует по дате присутствия и подстроке места (без учета регистра)
// Сортировка: дата присутствия, место, начало слота
func (r *Repository) ListUpcoming(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectSlots().
		Where(squirrel.Gt{"s.start_at": filter.From.UTC().Unix()})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.date": *filter.Date})
	}
	if filter.Location != nil && *filter.Location != "" {
		selectBuilder = selectBuilder.Where(sqlbuilder.ContainsFold("p.location", *filter.Location))
	}

	query, args, err := selectBuilder.
		OrderBy("p.date ASC", "p.location ASC", "s.start_at ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListUpcoming", query, args)
}

// ListByPresence получает все слоты присутствия по возрастанию времени
func (r *Repository) ListByPresence(ctx context.Context, presenceID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectSlots().
		Where(squirrel.Eq{"s.presence_id": presenceID}).
		OrderBy("s.start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPresence - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByPresence", query, args)
}

func (r *Repository) selectSlots() squirrel.SelectBuilder {
	return r.sb.Select("s.id", "s.presence_id", "s.start_at", "p.location", "p.date").
		From("slots s").
		Join("presences p ON p.id = s.presence_id")
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Slot, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var (
		s       domain.Slot
		startAt int64
	)

	if err := row.Scan(&s.ID, &s.PresenceID, &startAt, &s.Location, &s.Date); err != nil {
		return nil, err
	}

	s.StartAt = time.Unix(startAt, 0).UTC()
	return &s, nil
}
