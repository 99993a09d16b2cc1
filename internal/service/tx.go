package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode over stub repositories).
// Every multi-step workflow runs through here so a failure at any step
// rolls the whole sequence back.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// produtoLocks serializes the check-then-debit sequence per product so two
// concurrent saídas cannot both pass the sufficiency check before either
// debits.
type produtoLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newProdutoLocks() *produtoLocks {
	return &produtoLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (pl *produtoLocks) porProduto(id uuid.UUID) *sync.Mutex {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	lock, ok := pl.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		pl.locks[id] = lock
	}
	return lock
}
