package content

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]Entry // keyed by section + "\x00" + key
}

// NewMemoryRepository builds an in-memory content store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{entries: make(map[string]Entry)}
}

func (r *memoryRepository) List(_ context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Section != out[j].Section {
			return out[i].Section < out[j].Section
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (r *memoryRepository) Upsert(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := entry.Section + "\x00" + entry.Key
	if existing, ok := r.entries[k]; ok {
		entry.ID = existing.ID
	}
	entry.UpdatedAt = time.Now().UTC()
	r.entries[k] = entry
	return nil
}
