package wallet

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	wallets map[string]Wallet // keyed by user ID
}

// NewMemoryRepository builds an in-memory wallet store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{wallets: make(map[string]Wallet)}
}

func (r *memoryRepository) Create(_ context.Context, wallet Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[wallet.UserID] = wallet
	return nil
}

func (r *memoryRepository) GetByUser(_ context.Context, userID string) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallet, ok := r.wallets[userID]
	if !ok {
		return Wallet{}, ErrNotFound
	}
	return wallet, nil
}
