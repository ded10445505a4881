// Package storagerepo implementa o "armazenamento local" durável da loja:
// um mapa chave → valor string, com backends SQL, Redis e memória.
package storagerepo

import (
	"context"
	"sync"
)

// Storage é o contrato do armazenamento chave-valor durável.
type Storage interface {
	// Get devolve o valor e found=false quando a chave não existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStorage guarda os valores apenas em memória. Usado em testes e em
// execuções efêmeras (STORAGE_DRIVER=memory).
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage cria um armazenamento vazio em memória.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
