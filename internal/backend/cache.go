package backend

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/segurosmx/cotizador/internal/calculation"
	"github.com/segurosmx/cotizador/internal/domain"
)

const (
	ajusteCPKeyPrefix = "cotizador:ajuste-cp:"
	// absentMarker records that the backend has no adjustment for a postal code.
	absentMarker = "-"
)

// Store is the subset of *redis.Client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// AjusteCPSource looks up the loss-ratio adjustment of a postal code.
type AjusteCPSource interface {
	GetAjusteCP(ctx context.Context, cp string) (*domain.AjusteCP, error)
}

// CachedAjusteCP is a read-through Redis cache in front of an AjusteCPSource.
// Cache failures are logged and fall back to the source.
type CachedAjusteCP struct {
	next   AjusteCPSource
	store  Store
	ttl    time.Duration
	logger calculation.Logger
}

// NewCachedAjusteCP wraps next with a cache kept in store for ttl.
func NewCachedAjusteCP(next AjusteCPSource, store Store, ttl time.Duration, logger calculation.Logger) *CachedAjusteCP {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &CachedAjusteCP{next: next, store: store, ttl: ttl, logger: logger}
}

// GetAjusteCP returns the cached adjustment, or fetches and caches it.
func (c *CachedAjusteCP) GetAjusteCP(ctx context.Context, cp string) (*domain.AjusteCP, error) {
	key := ajusteCPKeyPrefix + cp

	val, err := c.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		if val == absentMarker {
			return nil, nil
		}
		var a domain.AjusteCP
		if jerr := json.Unmarshal([]byte(val), &a); jerr == nil {
			return &a, nil
		}
		c.logger.Warnf("discarding corrupt cache entry %s", key)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warnf("ajuste cp cache read failed for %s: %v", cp, err)
	}

	a, err := c.next.GetAjusteCP(ctx, cp)
	if err != nil {
		return nil, err
	}

	payload := absentMarker
	if a != nil {
		data, err := json.Marshal(a)
		if err != nil {
			return a, nil
		}
		payload = string(data)
	}
	if err := c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warnf("ajuste cp cache write failed for %s: %v", cp, err)
	}
	return a, nil
}
