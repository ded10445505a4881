package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsDir é o diretório das migrações dentro do FS embutido.
const MigrationsDir = "migrations"

func gooseDialect(dialect Dialect) (string, error) {
	switch dialect {
	case DialectSQLite:
		return "sqlite3", nil
	case DialectPostgres:
		return "postgres", nil
	case DialectMySQL:
		return "mysql", nil
	}
	return "", fmt.Errorf("dialeto de banco não suportado: %q", string(dialect))
}

// RunMigrations executa um comando do goose (up, down, status, version...)
// sobre as migrações embutidas no binário.
func RunMigrations(db *sql.DB, dialect Dialect, command string, args ...string) error {
	name, err := gooseDialect(dialect)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("goose: dialeto %s: %w", name, err)
	}

	if err := goose.Run(command, db, MigrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// Migrate aplica todas as migrações pendentes.
func Migrate(db *sql.DB, dialect Dialect) error {
	return RunMigrations(db, dialect, "up")
}
