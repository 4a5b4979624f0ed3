package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchN(n int, calls *int) FetchFunc {
	return func(context.Context) ([]Entry, error) {
		*calls++
		entries := make([]Entry, n)
		for i := range entries {
			entries[i] = Entry{Description: "ITEM " + string(rune('A'+i)), Code: "C" + string(rune('A'+i))}
		}
		return entries, nil
	}
}

func TestCacheGetLoadsOnceWhileFresh(t *testing.T) {
	c := NewCache(time.Hour, nil)
	calls := 0
	fetch := fetchN(3, &calls)

	first, err := c.Get(context.Background(), fetch, false)
	require.NoError(t, err)
	second, err := c.Get(context.Background(), fetch, false)
	require.NoError(t, err)

	assert.Same(t, first, second, "fresh snapshot must be shared")
	assert.Equal(t, 1, calls)
}

func TestCacheStatsLifecycle(t *testing.T) {
	c := NewCache(time.Hour, nil)

	stats := c.Stats()
	assert.Equal(t, "empty", stats.Status)
	assert.Zero(t, stats.EntryCount)

	calls := 0
	_, err := c.Get(context.Background(), fetchN(3, &calls), false)
	require.NoError(t, err)

	stats = c.Stats()
	assert.Equal(t, "valid", stats.Status)
	assert.Equal(t, 3, stats.EntryCount)
	assert.Equal(t, int64(1), stats.LoadCount)
	assert.Greater(t, stats.ExpiresIn, 0.0)

	c.Invalidate()
	stats = c.Stats()
	assert.Equal(t, "expired", stats.Status, "invalidate must expire without a new Get")
	assert.Equal(t, 3, stats.EntryCount, "invalidate must not clear data")
}

func TestCacheExpiryByClock(t *testing.T) {
	c := NewCache(time.Hour, nil)
	now := time.Now()
	c.now = func() time.Time { return now }

	calls := 0
	fetch := fetchN(2, &calls)
	_, err := c.Get(context.Background(), fetch, false)
	require.NoError(t, err)

	now = now.Add(59 * time.Minute)
	_, err = c.Get(context.Background(), fetch, false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(context.Background(), fetch, false)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "expired snapshot must trigger a refetch")
}

func TestCacheForceRefresh(t *testing.T) {
	c := NewCache(time.Hour, nil)
	calls := 0
	fetch := fetchN(2, &calls)

	_, err := c.Get(context.Background(), fetch, false)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), fetch, true)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(2), c.Stats().LoadCount)
}

func TestCacheFetchFailureKeepsPreviousSnapshot(t *testing.T) {
	c := NewCache(time.Hour, nil)
	calls := 0
	_, err := c.Get(context.Background(), fetchN(3, &calls), false)
	require.NoError(t, err)

	boom := errors.New("db unreachable")
	_, err = c.Get(context.Background(), func(context.Context) ([]Entry, error) {
		return nil, boom
	}, true)
	require.ErrorIs(t, err, boom)

	stats := c.Stats()
	assert.Equal(t, 3, stats.EntryCount, "failed refresh must not overwrite the snapshot")

	idx, err := c.Get(context.Background(), fetchN(3, &calls), false)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Size())
}

func TestCacheColdFetchFailurePropagates(t *testing.T) {
	c := NewCache(time.Hour, nil)
	boom := errors.New("cold start failure")
	idx, err := c.Get(context.Background(), func(context.Context) ([]Entry, error) {
		return nil, boom
	}, false)
	assert.Nil(t, idx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "empty", c.Stats().Status)
}

func TestCacheConcurrentGet(t *testing.T) {
	c := NewCache(time.Hour, nil)
	var mu sync.Mutex
	calls := 0
	fetch := func(context.Context) ([]Entry, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return []Entry{{Description: "ITEM A", Code: "CA"}}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx, err := c.Get(context.Background(), fetch, false)
			assert.NoError(t, err)
			assert.Equal(t, 1, idx.Size())
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "refresh must be single-flight")
}
