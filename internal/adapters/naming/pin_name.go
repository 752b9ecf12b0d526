// Package naming implements the deterministic pin-name function of §6.4,
// cached by id since the alphabet computation is pure but the same pin id
// is looked up repeatedly by the CLI's colony overview printer.
package naming

import "sync"

const alphabet = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const radix = int64(len(alphabet) - 1) // L = 34

// Cache is a lazily-populated, process-wide id -> name cache. Ids are
// monotonic 64-bit facility ids, so entries are never evicted (§9's "Name
// cache" design note).
type Cache struct {
	mu      sync.RWMutex
	entries map[int64]string
}

// NewCache builds an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[int64]string)}
}

// Name returns the "XX-XXX" display name (five alphabet characters and a
// dash) for id, computing
// and caching it on first request.
func (c *Cache) Name(id int64) string {
	c.mu.RLock()
	if name, ok := c.entries[id]; ok {
		c.mu.RUnlock()
		return name
	}
	c.mu.RUnlock()

	name := computeName(id)

	c.mu.Lock()
	c.entries[id] = name
	c.mu.Unlock()

	return name
}

// computeName implements §6.4's alphabet-indexed name derivation: for i in
// 0..5, the i-th character is alphabet[(id / L^i) mod L]; a '-' is inserted
// before the third character.
func computeName(id int64) string {
	chars := make([]byte, 5)
	power := int64(1)
	for i := 0; i < 5; i++ {
		chars[i] = alphabet[(id/power)%radix]
		power *= radix
	}
	return string(chars[:2]) + "-" + string(chars[2:])
}
