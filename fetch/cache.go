package fetch

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	defaultCacheTTL  = 10 * time.Minute
	defaultCacheSize = 500
)

type cacheEntry struct {
	result   *Result
	storedAt time.Time
}

// CachingFetcher wraps a Fetcher with a bounded TTL cache and single-flight
// de-duplication: concurrent requests for the same key share one in-flight
// fetch. Keys include the catalog version, so a version bump invalidates
// every cached entry.
type CachingFetcher struct {
	inner   Fetcher
	version string

	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int

	group singleflight.Group

	// OnLookup, if set, is called with the hit/miss outcome of each lookup.
	OnLookup func(hit bool)
}

// NewCachingFetcher wraps inner with caching keyed by version and URL.
func NewCachingFetcher(inner Fetcher, version string) *CachingFetcher {
	return &CachingFetcher{
		inner:   inner,
		version: version,
		entries: make(map[string]cacheEntry),
		ttl:     defaultCacheTTL,
		maxSize: defaultCacheSize,
	}
}

// SetTTL overrides the cache TTL.
func (f *CachingFetcher) SetTTL(ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttl = ttl
}

// Fetch serves from cache when fresh, otherwise performs one shared fetch
// per key. Failed fetches are never cached.
func (f *CachingFetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	key := f.version + "|" + rawURL

	if res, ok := f.lookup(key); ok {
		f.recordLookup(true)
		return res, nil
	}
	f.recordLookup(false)

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		// Another caller may have filled the cache while we waited.
		if res, ok := f.lookup(key); ok {
			return res, nil
		}
		// The flight is shared by every waiter, so it must not die with the
		// caller that happened to start it. The client timeout still bounds it.
		res, err := f.inner.Fetch(context.WithoutCancel(ctx), rawURL)
		if err != nil {
			return nil, err
		}
		f.store(key, res)
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (f *CachingFetcher) lookup(key string) (*Result, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entry, ok := f.entries[key]
	if !ok || time.Since(entry.storedAt) > f.ttl {
		return nil, false
	}
	return entry.result, true
}

func (f *CachingFetcher) store(key string, res *Result) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = cacheEntry{result: res, storedAt: time.Now()}
	if len(f.entries) > f.maxSize {
		f.evictLocked()
	}
}

// evictLocked drops expired entries first, then the oldest until under the
// size limit. Caller holds the write lock.
func (f *CachingFetcher) evictLocked() {
	now := time.Now()
	for key, entry := range f.entries {
		if now.Sub(entry.storedAt) > f.ttl {
			delete(f.entries, key)
		}
	}
	if len(f.entries) <= f.maxSize {
		return
	}

	type aged struct {
		key      string
		storedAt time.Time
	}
	all := make([]aged, 0, len(f.entries))
	for key, entry := range f.entries {
		all = append(all, aged{key, entry.storedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].storedAt.Before(all[j].storedAt) })
	for i := 0; i < len(all)-f.maxSize; i++ {
		delete(f.entries, all[i].key)
	}
}

func (f *CachingFetcher) recordLookup(hit bool) {
	if f.OnLookup != nil {
		f.OnLookup(hit)
	}
}
