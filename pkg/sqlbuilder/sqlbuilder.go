package sqlbuilder

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Dialect SQL диалект хранилища
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// Builder построитель запросов с плейсхолдерами под диалект
type Builder struct {
	squirrel.StatementBuilderType
	dialect Dialect
}

// New создает построитель запросов для диалекта
// Postgres использует $1, $2..., SQLite - ?
func New(dialect Dialect) Builder {
	sb := squirrel.StatementBuilder
	if dialect == Postgres {
		sb = sb.PlaceholderFormat(squirrel.Dollar)
	} else {
		sb = sb.PlaceholderFormat(squirrel.Question)
	}
	return Builder{StatementBuilderType: sb, dialect: dialect}
}

// ParseDialect проверяет имя драйвера
func ParseDialect(driver string) (Dialect, error) {
	switch Dialect(driver) {
	case Postgres, SQLite:
		return Dialect(driver), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Dialect возвращает диалект построителя
func (b Builder) Dialect() Dialect {
	return b.dialect
}

// ContainsFold условие регистронезависимого поиска подстроки,
// одинаково работающее в Postgres и SQLite
func ContainsFold(column, substr string) squirrel.Sqlizer {
	pattern := "%" + escapeLike(toLower(substr)) + "%"
	return squirrel.Expr(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column), pattern)
}
