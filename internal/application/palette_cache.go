package application

import (
	"sync"
	"time"

	"wadofetch/internal/domain"
	"wadofetch/internal/ports"
)

// paletteCacheTTL bounds how long a fetched palette stays valid.
const paletteCacheTTL = 24 * time.Hour

type paletteCacheEntry struct {
	colors  domain.PaletteColors
	addedAt time.Time
}

// PaletteCache memoizes fetched Palette Color LUTs by palette UID for up to
// paletteCacheTTL. It carries no size bound: the entry count is implicitly
// bounded by the number of distinct palettes seen in a session, which is a
// documented limitation rather than something this layer compensates for.
// Safe for concurrent use.
type PaletteCache struct {
	mu      sync.Mutex
	clock   ports.Clock
	entries map[string]paletteCacheEntry
	count   int
}

// NewPaletteCache builds an empty cache. A nil clock falls back to the
// system clock.
func NewPaletteCache(clock ports.Clock) *PaletteCache {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PaletteCache{
		clock:   clock,
		entries: make(map[string]paletteCacheEntry),
	}
}

// IsValidUID reports whether uid can key a cache entry.
func (c *PaletteCache) IsValidUID(uid string) bool {
	return uid != ""
}

// Get returns the cached palette for uid when present and younger than the
// TTL. An entry past the TTL is evicted and reported absent.
func (c *PaletteCache) Get(uid string) (domain.PaletteColors, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[uid]
	if !ok {
		return domain.PaletteColors{}, false
	}

	if c.clock.Now().Sub(entry.addedAt) > paletteCacheTTL {
		delete(c.entries, uid)
		c.count--
		return domain.PaletteColors{}, false
	}

	return entry.colors, true
}

// Put stores a palette keyed by its UID, stamping the current time. Palettes
// without a valid UID are not cached. Overwriting an existing key does not
// change the entry count.
func (c *PaletteCache) Put(colors domain.PaletteColors) {
	if !c.IsValidUID(colors.UID) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[colors.UID]; !ok {
		c.count++
	}
	c.entries[colors.UID] = paletteCacheEntry{colors: colors, addedAt: c.clock.Now()}
}

// Len returns the number of live entries.
func (c *PaletteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}
