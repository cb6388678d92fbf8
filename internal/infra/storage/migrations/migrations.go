package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

var (
	// ErrReadMigrations возвращается, если не удалось прочитать встроенные миграции
	ErrReadMigrations = errors.New("migrations: failed to read migration files")

	// ErrApplyMigration возвращается при ошибке применения миграции
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

const versionTable = "schema_migrations"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Apply применяет еще не примененные миграции диалекта в порядке имен файлов
// Каждая миграция выполняется в отдельной транзакции вместе с записью версии
func Apply(ctx context.Context, db *dbmetrics.DB, dialect sqlbuilder.Dialect, log Logger) error {
	sb := sqlbuilder.New(dialect)

	if _, err := db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (version TEXT PRIMARY KEY, applied_at BIGINT NOT NULL)", versionTable,
	)); err != nil {
		return fmt.Errorf("%w: create version table: %v", ErrApplyMigration, err)
	}

	names, err := fs.Glob(files, path.Join(string(dialect), "*.sql"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(path.Base(name), ".sql")

		applied, err := isApplied(ctx, db, sb, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrReadMigrations, name, err)
		}

		if err := applyOne(ctx, db, sb, version, string(body)); err != nil {
			return err
		}
		log.Info("Migration %s applied", version)
	}

	return nil
}

func isApplied(ctx context.Context, db dbmetrics.DBExecutor, sb sqlbuilder.Builder, version string) (bool, error) {
	query, args, err := sb.Select("COUNT(*)").
		From(versionTable).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build version query: %v", ErrApplyMigration, err)
	}

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: read version %s: %v", ErrApplyMigration, version, err)
	}
	return count > 0, nil
}

func applyOne(ctx context.Context, db *dbmetrics.DB, sb sqlbuilder.Builder, version, body string) (err error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApplyMigration, version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range splitStatements(body) {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, version, err)
		}
	}

	query, args, err := sb.Insert(versionTable).
		Columns("version", "applied_at").
		Values(version, time.Now().Unix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build insert: %v", ErrApplyMigration, version, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: record version: %v", ErrApplyMigration, version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApplyMigration, version, err)
	}
	return nil
}

// splitStatements делит SQL файл по ";" (миграции не содержат ";" внутри литералов)
func splitStatements(body string) []string {
	parts := strings.Split(body, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
