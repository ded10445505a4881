package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Drivers registrados em database/sql
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect identifica o banco usado pelo armazenamento local.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
)

// DriverName devolve o nome do driver registrado em database/sql.
func (d Dialect) DriverName() (string, error) {
	switch d {
	case DialectSQLite:
		return "sqlite3", nil
	case DialectPostgres:
		return "postgres", nil
	case DialectMySQL:
		return "mysql", nil
	}
	return "", fmt.Errorf("dialeto de banco não suportado: %q", string(d))
}

// Open inicializa e configura o pool de conexões para o dialeto informado.
// Retorna a conexão *sql.DB pronta para uso.
func Open(dialect Dialect, dataSourceName string) (*sql.DB, error) {
	driver, err := dialect.DriverName()
	if err != nil {
		return nil, err
	}

	// SQLite: garante que a pasta do arquivo existe.
	if dialect == DialectSQLite && dataSourceName != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dataSourceName), 0o755); err != nil {
			return nil, fmt.Errorf("falha ao criar a pasta do banco: %w", err)
		}
	}

	// 1. Abrir a Conexão
	db, err := sql.Open(driver, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	// 2. Testar a Conexão Imediatamente
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	// 3. Configuração do Connection Pool
	if dialect == DialectSQLite {
		// Um único escritor evita "database is locked".
		db.SetMaxOpenConns(1)
		return db, nil
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	return db, nil
}
