package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL is how long a catalog snapshot stays fresh unless configured
// otherwise.
const DefaultTTL = time.Hour

// FetchFunc loads the full catalog from its source of record.
type FetchFunc func(ctx context.Context) ([]Entry, error)

// CacheStats is the read-only view exposed to ops tooling.
type CacheStats struct {
	Status     string  `json:"status"` // "valid" | "expired" | "empty"
	EntryCount int     `json:"entry_count"`
	AgeSeconds float64 `json:"age_seconds"`
	LoadCount  int64   `json:"load_count"`
	TTLSeconds float64 `json:"ttl_seconds"`
	ExpiresIn  float64 `json:"expires_in"`
}

type snapshot struct {
	index    *Index
	loadedAt time.Time
}

func (s *snapshot) validAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.loadedAt) < ttl
}

// Cache holds at most one catalog Index snapshot, shared by every request in
// the process. Construct it once at the composition root and inject it;
// readers keep whatever snapshot they obtained even while a refresh is
// building the next one, and the swap is a single atomic store.
type Cache struct {
	ttl       time.Duration
	logger    *slog.Logger
	current   atomic.Pointer[snapshot]
	refreshMu sync.Mutex
	loadCount atomic.Int64

	now func() time.Time // overridable in tests
}

// NewCache creates a cache with the given TTL; ttl <= 0 selects DefaultTTL.
func NewCache(ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{ttl: ttl, logger: logger, now: time.Now}
}

// Get returns the current snapshot's index when it is still fresh and force
// is false. Otherwise it calls fetch, builds a new index, and swaps it in.
// A fetch or build failure is returned to the caller and leaves the previous
// snapshot — stale but consistent — in place.
func (c *Cache) Get(ctx context.Context, fetch FetchFunc, force bool) (*Index, error) {
	if !force {
		if snap := c.current.Load(); snap != nil && snap.validAt(c.now(), c.ttl) {
			return snap.index, nil
		}
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if !force {
		if snap := c.current.Load(); snap != nil && snap.validAt(c.now(), c.ttl) {
			return snap.index, nil
		}
	}

	start := c.now()
	entries, err := fetch(ctx)
	if err != nil {
		c.logger.Error("catalog fetch failed, keeping previous snapshot", "error", err)
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}

	idx := BuildIndex(entries)
	c.current.Store(&snapshot{index: idx, loadedAt: c.now()})
	n := c.loadCount.Add(1)

	c.logger.Info("catalog cache loaded",
		"entries", idx.Size(),
		"fetched", len(entries),
		"elapsed_ms", c.now().Sub(start).Milliseconds(),
		"load_count", n,
	)
	return idx, nil
}

// Invalidate marks the current snapshot expired without clearing its data,
// so the next Get refreshes while in-flight readers are unaffected. It never
// blocks concurrent Get calls on fetch work.
func (c *Cache) Invalidate() {
	snap := c.current.Load()
	if snap == nil {
		return
	}
	// Zero load time pushes the effective age past any TTL.
	c.current.Store(&snapshot{index: snap.index, loadedAt: time.Time{}})
	c.logger.Info("catalog cache invalidated")
}

// Stats reports cache state for the operational surface. Side-effect free.
func (c *Cache) Stats() CacheStats {
	stats := CacheStats{
		LoadCount:  c.loadCount.Load(),
		TTLSeconds: c.ttl.Seconds(),
	}
	snap := c.current.Load()
	if snap == nil {
		stats.Status = "empty"
		return stats
	}

	now := c.now()
	age := now.Sub(snap.loadedAt)
	stats.EntryCount = snap.index.Size()
	stats.AgeSeconds = age.Seconds()
	if snap.validAt(now, c.ttl) {
		stats.Status = "valid"
		stats.ExpiresIn = (c.ttl - age).Seconds()
	} else {
		stats.Status = "expired"
	}
	return stats
}
