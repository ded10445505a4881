package storagerepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperror "gostore/internal/errors"
	"gostore/internal/pkg/database"
	"gostore/internal/pkg/logger"
)

type sqlQueries struct {
	get    string
	upsert string
	delete string
}

var queriesByDialect = map[database.Dialect]sqlQueries{
	database.DialectSQLite: {
		get: `SELECT value FROM local_storage WHERE storage_key = ?`,
		upsert: `INSERT INTO local_storage (storage_key, value, updated_at) VALUES (?, ?, ?)
                 ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		delete: `DELETE FROM local_storage WHERE storage_key = ?`,
	},
	database.DialectPostgres: {
		get: `SELECT value FROM local_storage WHERE storage_key = $1`,
		upsert: `INSERT INTO local_storage (storage_key, value, updated_at) VALUES ($1, $2, $3)
                 ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		delete: `DELETE FROM local_storage WHERE storage_key = $1`,
	},
	database.DialectMySQL: {
		get: `SELECT value FROM local_storage WHERE storage_key = ?`,
		upsert: `INSERT INTO local_storage (storage_key, value, updated_at) VALUES (?, ?, ?)
                 ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`,
		delete: `DELETE FROM local_storage WHERE storage_key = ?`,
	},
}

// SQLStorage implementa Storage sobre a tabela local_storage.
// A tabela é criada pelas migrações de internal/pkg/database.
type SQLStorage struct {
	DB        *sql.DB
	DBTimeout time.Duration
	queries   sqlQueries
	logger    logger.Logger
}

// NewSQLStorage cria o repositório para o dialeto informado.
func NewSQLStorage(db *sql.DB, dialect database.Dialect, dbTimeout time.Duration, log logger.Logger) (*SQLStorage, error) {
	queries, ok := queriesByDialect[dialect]
	if !ok {
		return nil, apperror.NewInternalError("dialeto de armazenamento não suportado: "+string(dialect), nil)
	}
	return &SQLStorage{DB: db, DBTimeout: dbTimeout, queries: queries, logger: log}, nil
}

// Get busca o valor da chave.
func (r *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var value string
	err := r.DB.QueryRowContext(ctxTimeout, r.queries.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Error("Falha ao ler chave do armazenamento local.", err)
		return "", false, apperror.NewDBError("failed to read local storage", err)
	}
	return value, true, nil
}

// Set grava (ou sobrescreve) o valor da chave.
func (r *SQLStorage) Set(ctx context.Context, key, value string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if _, err := r.DB.ExecContext(ctxTimeout, r.queries.upsert, key, value, time.Now().UTC()); err != nil {
		r.logger.Error("Falha ao gravar chave no armazenamento local.", err)
		return apperror.NewDBError("failed to write local storage", err)
	}

	r.logger.Debug("Chave gravada no armazenamento local.", map[string]interface{}{"key": key})
	return nil
}

// Delete remove a chave. Remover chave inexistente não é erro.
func (r *SQLStorage) Delete(ctx context.Context, key string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if _, err := r.DB.ExecContext(ctxTimeout, r.queries.delete, key); err != nil {
		r.logger.Error("Falha ao remover chave do armazenamento local.", err)
		return apperror.NewDBError("failed to delete from local storage", err)
	}
	return nil
}
