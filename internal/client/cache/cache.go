// Package cache holds the most recently fetched collection for the active
// session. It is the single authoritative in-memory copy: views derive
// projections from snapshots and never keep their own.
package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brainkeep/brainkeep/internal/client/client"
	"github.com/brainkeep/brainkeep/internal/client/models"
	"github.com/brainkeep/brainkeep/internal/client/session"
	"github.com/brainkeep/brainkeep/internal/logging"
)

// Snapshot is a point-in-time view of the cache: a copy of the collection,
// whether a refresh is in flight, and the last recorded error.
type Snapshot struct {
	Items   []models.ContentItem
	Loading bool
	Err     error
}

// Cache refreshes wholesale: the last applied fetch always wins, there is
// no incremental merge. A failed refresh preserves the previous collection
// (stale-but-available) and only records the error; the next successful
// refresh clears it.
//
// Manual refreshes and the periodic watcher may overlap. Every refresh
// takes a sequence number when it is issued and a completion is applied
// only if its number is higher than the last one applied, so a stale
// response that arrives late is discarded deterministically instead of
// clobbering newer data.
type Cache struct {
	client  client.Client
	session *session.Store
	log     logging.Logger

	issued atomic.Uint64

	mu       sync.Mutex
	items    []models.ContentItem
	err      error
	inFlight int
	applied  uint64
}

// New returns an empty cache bound to the API client and session store.
func New(c client.Client, st *session.Store, log logging.Logger) *Cache {
	return &Cache{client: c, session: st, log: log}
}

// Refresh fetches the full collection and applies it. Without a stored
// session credential it fails with client.ErrUnauthenticated before any
// network contact. The returned error is also observable via Snapshot.
func (c *Cache) Refresh(ctx context.Context) error {
	seq := c.issued.Add(1)
	c.begin()

	token := c.session.Token()
	if token == "" {
		err := fmt.Errorf("%w: no session credential stored", client.ErrUnauthenticated)
		c.complete(seq, nil, err)
		return err
	}

	items, err := c.client.ListContent(ctx, token)
	c.complete(seq, items, err)
	return err
}

// Snapshot returns the current state without triggering a fetch. The item
// slice is a copy; mutating it cannot touch the cache.
func (c *Cache) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.ContentItem, len(c.items))
	copy(items, c.items)
	return Snapshot{Items: items, Loading: c.inFlight > 0, Err: c.err}
}

// Watch refreshes immediately and then on every interval tick until ctx is
// done. Refresh errors are logged, not returned: the ticker is a periodic
// re-attempt, not a retry mechanism.
func (c *Cache) Watch(ctx context.Context, interval time.Duration) {
	if err := c.Refresh(ctx); err != nil {
		c.log.Warn(ctx, "initial refresh failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.log.Warn(ctx, "periodic refresh failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *Cache) begin() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()
}

// complete applies one refresh outcome. Stale completions (sequence number
// at or below the last applied one) are dropped whether they carry data or
// an error: a newer outcome has already been recorded.
func (c *Cache) complete(seq uint64, items []models.ContentItem, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight > 0 {
		c.inFlight--
	}
	if seq <= c.applied {
		c.log.Warn(context.Background(), "discarding stale refresh result", "seq", seq, "applied", c.applied)
		return
	}
	c.applied = seq

	if err != nil {
		c.err = err
		return
	}
	c.items = items
	c.err = nil
}
