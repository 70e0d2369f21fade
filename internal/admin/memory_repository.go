package admin

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory admin data source for testing and for
// running without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []UserRecord
	stats Stats
}

// NewMemoryRepository builds an empty in-memory admin repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SeedUser appends a user row to the listing.
func (r *MemoryRepository) SeedUser(u UserRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
}

// SeedStats replaces the stats snapshot.
func (r *MemoryRepository) SeedStats(s Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = s
}

// ListUsers returns the seeded user rows.
func (r *MemoryRepository) ListUsers(_ context.Context) ([]UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]UserRecord, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Stats returns the seeded stats snapshot.
func (r *MemoryRepository) Stats(_ context.Context) (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}
