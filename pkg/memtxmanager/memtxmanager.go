// Package memtxmanager is the txmanager variant for the in-memory storage
// driver. The in-memory repositories have no transactions, so atomicity of a
// booking write plus the paired availability update is provided by a single
// process-wide lock: every mutating sequence runs under the write lock,
// read-only sequences share the read lock.
package memtxmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует конкурентные изменения in-memory хранилища
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn под эксклюзивной блокировкой
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

// DoSerializable выполняет fn под эксклюзивной блокировкой.
// Для in-memory хранилища это эквивалент сериализуемой транзакции.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn под разделяемой блокировкой
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(ctx)
}
