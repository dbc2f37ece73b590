package entrycache

import (
	"sync"

	"deliveryhub/internal/entities"
)

// Cache holds the last successfully fetched entry list. The workflow never
// applies optimistic updates: a mutation invalidates the snapshot and the
// next read goes back to the backend.
type Cache struct {
	mu      sync.RWMutex
	entries []entities.DeliveryEntry
	fresh   bool
}

func New() *Cache {
	return &Cache{}
}

// Replace stores a new snapshot and marks it fresh.
func (c *Cache) Replace(entries []entities.DeliveryEntry) {
	snapshot := make([]entities.DeliveryEntry, len(entries))
	copy(snapshot, entries)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = snapshot
	c.fresh = true
}

// Snapshot returns a copy of the cached list and whether it is fresh. A stale
// snapshot still reflects the last confirmed server state.
func (c *Cache) Snapshot() ([]entities.DeliveryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]entities.DeliveryEntry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot, c.fresh
}

// Invalidate marks the snapshot stale without dropping it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fresh = false
}
