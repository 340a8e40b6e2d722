package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/metrics"
)

// Fetcher loads a resource from the POS for the given token.
type Fetcher[T any] func(ctx context.Context, token string) (T, error)

// Params bundles the dependencies for a read-through cache.
type Params[T any] struct {
	Kind    enums.ResourceKind
	TTL     time.Duration
	Store   Store
	Fetch   Fetcher[T]
	Logger  *logger.Logger
	Metrics *metrics.CacheMetrics
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Cache is a token-partitioned read-through cache for one resource kind.
// An entry is served only to the token that produced it and only before it expires.
type Cache[T any] struct {
	kind    enums.ResourceKind
	ttl     time.Duration
	store   Store
	fetch   Fetcher[T]
	logger  *logger.Logger
	metrics *metrics.CacheMetrics
	now     func() time.Time
	group   singleflight.Group
}

func New[T any](p Params[T]) (*Cache[T], error) {
	if !p.Kind.IsValid() {
		return nil, fmt.Errorf("invalid resource kind %q", p.Kind)
	}
	if p.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive")
	}
	if p.Store == nil {
		return nil, fmt.Errorf("cache store is required")
	}
	if p.Fetch == nil {
		return nil, fmt.Errorf("cache fetcher is required")
	}
	if p.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	clock := p.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Cache[T]{
		kind:    p.Kind,
		ttl:     p.TTL,
		store:   p.Store,
		fetch:   p.Fetch,
		logger:  p.Logger,
		metrics: p.Metrics,
		now:     clock,
	}, nil
}

// Fingerprint returns the stable digest stored in place of the raw token.
func Fingerprint(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Get returns cached data for token or fetches, stores and returns fresh data.
// A failed fetch leaves the stored entry untouched and never falls back to it.
func (c *Cache[T]) Get(ctx context.Context, token string) (T, error) {
	var zero T
	if strings.TrimSpace(token) == "" {
		return zero, pkgerrors.New(pkgerrors.CodeUnauthorized, "authorization token required")
	}

	key := c.kind.String()
	fp := Fingerprint(token)

	if data, ok := c.lookup(ctx, key, fp); ok {
		c.metrics.IncHit(key)
		return data, nil
	}
	c.metrics.IncMiss(key)

	v, err, _ := c.group.Do(key+":"+fp, func() (any, error) {
		// the fetch and cache write outlive a disconnected client; the POS timeout bounds them
		fetchCtx := context.WithoutCancel(ctx)
		data, err := c.fetch(fetchCtx, token)
		if err != nil {
			if pkgerrors.IsCode(err, pkgerrors.CodeUnauthenticated) {
				c.evict(fetchCtx, key, fp)
			}
			return nil, err
		}
		c.save(fetchCtx, key, fp, data)
		return data, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache[T]) lookup(ctx context.Context, key, fp string) (T, bool) {
	var data T
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{"resource": key, "error": err.Error()}), "cache lookup failed")
		return data, false
	}
	if !ok || entry.Fingerprint != fp || !c.now().Before(entry.ExpiresAt) {
		return data, false
	}
	if err := json.Unmarshal(entry.Data, &data); err != nil {
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{"resource": key, "error": err.Error()}), "cache entry unreadable")
		return data, false
	}
	return data, true
}

func (c *Cache[T]) save(ctx context.Context, key, fp string, data T) {
	encoded, err := json.Marshal(data)
	if err != nil {
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{"resource": key, "error": err.Error()}), "cache encode failed")
		return
	}
	entry := Entry{
		Data:        encoded,
		Fingerprint: fp,
		ExpiresAt:   c.now().Add(c.ttl),
	}
	if err := c.store.Set(ctx, key, entry, c.ttl); err != nil {
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{"resource": key, "error": err.Error()}), "cache write failed")
	}
}

// evict drops the entry when it still belongs to the token the POS just rejected.
func (c *Cache[T]) evict(ctx context.Context, key, fp string) {
	entry, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok || entry.Fingerprint != fp {
		return
	}
	if err := c.store.Delete(ctx, key); err != nil {
		c.logger.Warn(c.logger.WithFields(ctx, map[string]any{"resource": key, "error": err.Error()}), "cache evict failed")
		return
	}
	c.metrics.IncEviction(key)
	c.logger.Info(c.logger.WithField(ctx, "resource", key), "cache entry evicted after upstream rejection")
}
