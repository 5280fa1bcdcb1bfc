/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination cache_mocks_test.go -package diddoc_test -source=cache.go -mock_names registry=MockRegistry,EntryStore=MockEntryStore

// Package diddoc keeps resolved DID documents fresh for at most MaxAge and re-fetches every
// cached document on a fixed period.
package diddoc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/trustbloc/did-verifier/internal/pkg/log"
	"github.com/trustbloc/did-verifier/pkg/doc/did"
	"github.com/trustbloc/did-verifier/pkg/lifecycle"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics"
	"github.com/trustbloc/did-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/did-verifier/pkg/restapi/resterr"
)

const (
	// MaxAge is the age after which a cached document is fetched again on read.
	MaxAge = time.Hour
	// DefaultRefreshInterval is the period of the full refresh.
	DefaultRefreshInterval = time.Hour
)

var logger = log.New("diddoc-cache")

// Entry is a cached DID document with the time it was fetched.
type Entry struct {
	Document  *did.Document `json:"document"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// EntryStore holds cache entries. Implementations must be safe for concurrent use and replace
// entries atomically.
type EntryStore interface {
	Get(ctx context.Context, did string) (*Entry, bool, error)
	Put(ctx context.Context, did string, entry *Entry) error
	DIDs(ctx context.Context) ([]string, error)
}

type registry interface {
	GetDIDDocument(ctx context.Context, didOrKeyURL string) (*did.Document, error)
}

// Opt configures a Cache.
type Opt func(c *Cache)

// WithStore sets the entry store. The default store is in memory.
func WithStore(store EntryStore) Opt {
	return func(c *Cache) {
		c.store = store
	}
}

// WithRefreshInterval sets the period of the full refresh.
func WithRefreshInterval(interval time.Duration) Opt {
	return func(c *Cache) {
		c.refreshInterval = interval
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(m metrics.Metrics) Opt {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Opt {
	return func(c *Cache) {
		c.now = now
	}
}

// Cache resolves DID documents through the registry and caches them.
type Cache struct {
	*lifecycle.Lifecycle

	registry        registry
	store           EntryStore
	refreshInterval time.Duration
	metrics         metrics.Metrics
	now             func() time.Time

	done chan struct{}
	wg   sync.WaitGroup
}

// New returns a cache in front of the registry. Start begins the periodic refresh.
func New(reg registry, opts ...Opt) *Cache {
	c := &Cache{
		registry:        reg,
		store:           NewMemStore(),
		refreshInterval: DefaultRefreshInterval,
		metrics:         noop.GetMetrics(),
		now:             time.Now,
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.Lifecycle = lifecycle.New("diddoc-cache",
		lifecycle.WithStart(c.start),
		lifecycle.WithStop(c.stop),
	)

	return c
}

// Resolve returns the document of the DID named by didOrKeyURL. A missing or stale entry is
// fetched from the registry before returning.
func (c *Cache) Resolve(ctx context.Context, didOrKeyURL string) (*did.Document, error) {
	u, err := did.ParseKeyURL(didOrKeyURL)
	if err != nil {
		return nil, err
	}

	entry, ok, err := c.store.Get(ctx, u.DID)
	if err != nil {
		logger.Warn("Failed to read cached did document", log.WithDID(u.DID), log.WithError(err))
	}

	if ok && c.now().Sub(entry.FetchedAt) <= MaxAge {
		return entry.Document, nil
	}

	return c.fetch(ctx, u.DID)
}

// Refresh re-fetches every cached document regardless of its age. Failures are logged and the
// stale entry is kept.
func (c *Cache) Refresh(ctx context.Context) error {
	dids, err := c.store.DIDs(ctx)
	if err != nil {
		return fmt.Errorf("list cached dids: %w", err)
	}

	refreshed := 0

	for _, d := range dids {
		if _, err = c.fetch(ctx, d); err != nil {
			logger.Warn("Failed to refresh did document", log.WithDID(d), log.WithError(err))

			continue
		}

		refreshed++
	}

	c.metrics.DIDCacheRefreshed(refreshed)

	logger.Debug("Refreshed did documents", log.WithCount(refreshed))

	return nil
}

func (c *Cache) fetch(ctx context.Context, didID string) (*did.Document, error) {
	start := c.now()

	doc, err := c.registry.GetDIDDocument(ctx, didID)
	if err != nil {
		return nil, resterr.Wrap(err, resterr.DIDDocumentRetrievalFailed)
	}

	c.metrics.DIDResolveTime(c.now().Sub(start))

	if err = c.store.Put(ctx, didID, &Entry{Document: doc, FetchedAt: c.now()}); err != nil {
		logger.Warn("Failed to cache did document", log.WithDID(didID), log.WithError(err))
	}

	return doc, nil
}

func (c *Cache) start() {
	c.wg.Add(1)

	go c.refreshLoop()
}

func (c *Cache) stop() {
	close(c.done)

	c.wg.Wait()
}

func (c *Cache) refreshLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Refresh(context.Background()); err != nil {
				logger.Error("Did document refresh failed", log.WithError(err))
			}
		case <-c.done:
			return
		}
	}
}
