package storagerepo

import (
	"context"
	"errors"

	apperror "gostore/internal/errors"
	"gostore/internal/pkg/cache"
)

// RedisStorage implementa Storage sobre o cache.Client, sem expiração.
type RedisStorage struct {
	client cache.Client
	prefix string
}

// NewRedisStorage cria o repositório. As chaves recebem o prefixo informado.
func NewRedisStorage(client cache.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.NewInternalError("falha ao ler armazenamento local (Redis)", err)
	}
	return val, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0); err != nil {
		return apperror.NewInternalError("falha ao gravar armazenamento local (Redis)", err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Delete(ctx, r.prefix+key); err != nil {
		return apperror.NewInternalError("falha ao remover armazenamento local (Redis)", err)
	}
	return nil
}
