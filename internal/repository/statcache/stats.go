package statcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/db/cache"
	"github.com/grazioso-salvare/shelterdex/internal/domain"
)

const keyPrefix = "shelterdex:stats:"

// statsSource is the inner provider of dashboard aggregations.
type statsSource interface {
	BreedCounts(ctx context.Context, c domain.Criteria) ([]domain.BreedCount, error)
	SexCounts(ctx context.Context, c domain.Criteria) ([]domain.SexCount, error)
	AgeSummary(ctx context.Context, c domain.Criteria) (*domain.AgeSummary, error)
}

// kvStore is the consumer interface for the cache backend (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedStats caches aggregation results in a key-value store with a TTL.
// Cache failures degrade to direct reads; the dashboard never breaks because
// the cache is down.
type CachedStats struct {
	inner      statsSource
	store      kvStore
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator over a stats source.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner statsSource,
	store kvStore,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedStats {
	return &CachedStats{
		inner:      inner,
		store:      store,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// BreedCounts returns cached breed distribution or recomputes it.
func (c *CachedStats) BreedCounts(ctx context.Context, crit domain.Criteria) ([]domain.BreedCount, error) {
	key := c.key("breeds", crit)

	var cached []domain.BreedCount
	if c.getJSON(ctx, key, &cached) {
		c.incCache("hit")
		return cached, nil
	}
	c.incCache("miss")

	out, err := c.inner.BreedCounts(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("breed counts: %w", err)
	}
	c.putJSON(ctx, key, out)
	return out, nil
}

// SexCounts returns cached sex distribution or recomputes it.
func (c *CachedStats) SexCounts(ctx context.Context, crit domain.Criteria) ([]domain.SexCount, error) {
	key := c.key("sex", crit)

	var cached []domain.SexCount
	if c.getJSON(ctx, key, &cached) {
		c.incCache("hit")
		return cached, nil
	}
	c.incCache("miss")

	out, err := c.inner.SexCounts(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("sex counts: %w", err)
	}
	c.putJSON(ctx, key, out)
	return out, nil
}

// AgeSummary returns a cached age summary or recomputes it.
func (c *CachedStats) AgeSummary(ctx context.Context, crit domain.Criteria) (*domain.AgeSummary, error) {
	key := c.key("age", crit)

	var cached *domain.AgeSummary
	if c.getJSON(ctx, key, &cached) {
		c.incCache("hit")
		return cached, nil
	}
	c.incCache("miss")

	out, err := c.inner.AgeSummary(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("age summary: %w", err)
	}
	c.putJSON(ctx, key, out)
	return out, nil
}

func (c *CachedStats) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// key hashes the criteria so the cache key stays bounded regardless of
// breed list size.
func (c *CachedStats) key(kind string, crit domain.Criteria) string {
	data, _ := json.Marshal(crit)
	h := sha256.Sum256(data)
	return keyPrefix + kind + ":" + hex.EncodeToString(h[:8])
}

func (c *CachedStats) getJSON(ctx context.Context, key string, dst any) bool {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached stats", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("Failed to parse cached stats", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *CachedStats) putJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.store.SetTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache stats", zap.String("key", key), zap.Error(err))
	}
}
