// Package testutil содержит общие помощники для тестов: SQLite на временном
// файле с примененными миграциями и управляемые часы
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-PresenceBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-PresenceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PresenceBooking/pkg/logger"
	"github.com/m04kA/SMC-PresenceBooking/pkg/sqlbuilder"
)

// SQLiteDSN формирует DSN modernc.org/sqlite с включенными внешними ключами
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
}

// NewSQLite открывает SQLite во временном каталоге теста и применяет миграции
// База закрывается автоматически по окончании теста
func NewSQLite(t *testing.T) *dbmetrics.DB {
	t.Helper()

	raw, err := sql.Open("sqlite", SQLiteDSN(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)

	db := dbmetrics.Wrap(raw, nil)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Apply(context.Background(), db, sqlbuilder.SQLite, logger.Nop()))

	return db
}
