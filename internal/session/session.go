// Package session keeps the per-session memory of occurrences that were
// already offered for conversion, so declining or converting a link does not
// lead to it being offered again on the next scan of the same line.
package session

import (
	"sync"

	"github.com/HappyToy010101/Wiki-markup-for-case-languages/internal/types"
)

// Cache is the offered-occurrence set. Entries live for the whole session;
// there is no per-document eviction. Clear is called at teardown.
type Cache struct {
	mu   sync.Mutex
	seen map[types.Key]struct{}
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{seen: make(map[types.Key]struct{})}
}

// Mark records the key as offered. Marking an already-present key is a no-op.
func (c *Cache) Mark(k types.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[k] = struct{}{}
}

// Seen reports whether the key was already offered.
func (c *Cache) Seen(k types.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.seen[k]
	return ok
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = make(map[types.Key]struct{})
}

// Len returns the number of recorded entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
