package storagerepo_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gostore/internal/pkg/cache"
	"gostore/internal/pkg/database"
	"gostore/internal/pkg/logger"
	"gostore/internal/repository/storagerepo"
)

// exerciseStorage verifica o contrato comum a todos os backends.
func exerciseStorage(t *testing.T, store storagerepo.Storage) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "gostore:session")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "gostore:session", `{"email":"a@b.com"}`))
	val, found, err := store.Get(ctx, "gostore:session")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"email":"a@b.com"}`, val)

	// Sobrescrever mantém uma única entrada.
	require.NoError(t, store.Set(ctx, "gostore:session", `{"email":"c@d.com"}`))
	val, _, err = store.Get(ctx, "gostore:session")
	require.NoError(t, err)
	assert.Equal(t, `{"email":"c@d.com"}`, val)

	require.NoError(t, store.Delete(ctx, "gostore:session"))
	_, found, err = store.Get(ctx, "gostore:session")
	require.NoError(t, err)
	assert.False(t, found)

	// Remover chave inexistente não é erro.
	assert.NoError(t, store.Delete(ctx, "gostore:session"))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, storagerepo.NewMemoryStorage())
}

func TestSQLStorage_SQLite(t *testing.T) {
	db, err := database.Open(database.DialectSQLite, filepath.Join(t.TempDir(), "gostore.db"))
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.Migrate(db, database.DialectSQLite))

	store, err := storagerepo.NewSQLStorage(db, database.DialectSQLite, 5*time.Second, logger.NewNop())
	require.NoError(t, err)

	exerciseStorage(t, store)
}

func TestSQLStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gostore.db")
	ctx := context.Background()

	db, err := database.Open(database.DialectSQLite, path)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, database.DialectSQLite))
	store, err := storagerepo.NewSQLStorage(db, database.DialectSQLite, time.Second, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, db.Close())

	db, err = database.Open(database.DialectSQLite, path)
	require.NoError(t, err)
	defer db.Close()
	store, err = storagerepo.NewSQLStorage(db, database.DialectSQLite, time.Second, logger.NewNop())
	require.NoError(t, err)

	val, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", val)
}

func TestNewSQLStorage_UnknownDialect(t *testing.T) {
	_, err := storagerepo.NewSQLStorage(nil, database.Dialect("oracle"), time.Second, logger.NewNop())
	assert.Error(t, err)
}

// MockCacheClient é uma implementação mock de cache.Client.
type MockCacheClient struct {
	mock.Mock
}

func (m *MockCacheClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheClient) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	args := m.Called(ctx, key, expiration)
	return args.Error(0)
}

func (m *MockCacheClient) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheClient) Close() error { return nil }

func TestRedisStorage(t *testing.T) {
	client := new(MockCacheClient)
	store := storagerepo.NewRedisStorage(client, "ls:")
	ctx := context.Background()

	client.On("Get", ctx, "ls:missing").Return("", cache.ErrCacheMiss)
	client.On("Get", ctx, "ls:present").Return("valor", nil)
	client.On("Get", ctx, "ls:broken").Return("", errors.New("connection reset"))
	client.On("Set", ctx, "ls:present", "valor", time.Duration(0)).Return(nil)
	client.On("Delete", ctx, "ls:present").Return(nil)

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	val, found, err := store.Get(ctx, "present")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "valor", val)

	_, _, err = store.Get(ctx, "broken")
	assert.Error(t, err)

	assert.NoError(t, store.Set(ctx, "present", "valor"))
	assert.NoError(t, store.Delete(ctx, "present"))
	client.AssertExpectations(t)
}
