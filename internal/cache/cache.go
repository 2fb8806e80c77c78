// Package cache provides the time-boxed snapshot of enabled keyword records
// that shields the remote store from per-message reads.
package cache

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// DefaultTTL bounds snapshot staleness. Administrative writes to the remote
// store become visible at the next natural expiry; there is no write-through.
const DefaultTTL = 5 * time.Minute

// ErrUnavailable is returned only when the source fails on the first-ever
// refresh, before any snapshot exists. Callers treat it as the signal to
// answer from the compiled-in canonical table.
var ErrUnavailable = errors.New("keyword source unavailable and no snapshot cached")

// Source lists all enabled keyword records sorted by priority descending.
type Source interface {
	ListEnabledByPriority(ctx context.Context) ([]models.KeywordRecord, error)
}

// ResolutionCache holds at most one snapshot plus its fetch time. The clock
// is injected so tests can advance time instead of sleeping.
type ResolutionCache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	snapshot  []models.KeywordRecord
	fetchedAt time.Time
	primed    bool
}

// New creates a resolution cache. A zero ttl means DefaultTTL; a nil clock
// means time.Now.
func New(source Source, ttl time.Duration, now func() time.Time) *ResolutionCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &ResolutionCache{source: source, ttl: ttl, now: now}
}

// Get returns the enabled records sorted by priority descending, refreshing
// from the source when the snapshot has expired. A refresh failure serves
// the previous snapshot, however stale; two callers racing past an expired
// TTL both refresh and the last write wins, which is harmless since either
// result is a complete snapshot.
func (c *ResolutionCache) Get(ctx context.Context) ([]models.KeywordRecord, error) {
	c.mu.RLock()
	snapshot, fetchedAt, primed := c.snapshot, c.fetchedAt, c.primed
	c.mu.RUnlock()

	if primed && c.now().Sub(fetchedAt) < c.ttl {
		return snapshot, nil
	}

	// No lock held across the remote call.
	records, err := c.source.ListEnabledByPriority(ctx)
	if err != nil {
		if primed {
			log.Printf("Keyword snapshot refresh failed, serving stale snapshot: %v", err)
			return snapshot, nil
		}
		return nil, ErrUnavailable
	}

	c.mu.Lock()
	c.snapshot = records
	c.fetchedAt = c.now()
	c.primed = true
	c.mu.Unlock()

	return records, nil
}

// Stats reports the current snapshot state for the admin dashboard.
func (c *ResolutionCache) Stats() (size int, fetchedAt time.Time, primed bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snapshot), c.fetchedAt, c.primed
}
