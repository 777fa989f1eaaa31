package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 24 * time.Hour

// cachedAddress is the Redis representation of a resolved address.
type cachedAddress struct {
	CEP    string `json:"cep"`
	City   string `json:"city"`
	Region string `json:"region"`
}

// CachedLookup decorates an AddressLookup with a Redis cache. Postal code
// assignments change rarely, so resolved addresses are cached for a day.
// Cache failures degrade to a direct lookup and are logged, never surfaced.
type CachedLookup struct {
	next   ports.AddressLookup
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedLookup wraps the given lookup with a Redis cache.
// A non-positive ttl falls back to 24 hours.
func NewCachedLookup(
	next ports.AddressLookup,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedLookup {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &CachedLookup{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "viacep_cache"),
	}
}

// Lookup resolves a postal code, serving from cache when possible.
func (l *CachedLookup) Lookup(ctx context.Context, postalCode string) (kernel.Address, error) {
	key := "viacep:" + postalCode

	payload, err := l.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached cachedAddress
		if err = json.Unmarshal(payload, &cached); err == nil {
			if address, restoreErr := kernel.NewAddress(cached.CEP, cached.City, cached.Region); restoreErr == nil {
				return address, nil
			}
		}
		l.logger.WarnContext(ctx, "Discarding unreadable cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		l.logger.WarnContext(ctx, "Address cache read failed", "key", key, "error", err)
	}

	address, err := l.next.Lookup(ctx, postalCode)
	if err != nil {
		return kernel.Address{}, err
	}

	payload, err = json.Marshal(cachedAddress{
		CEP:    address.CEP(),
		City:   address.City(),
		Region: address.Region(),
	})
	if err == nil {
		if err = l.client.Set(ctx, key, payload, l.ttl).Err(); err != nil {
			l.logger.WarnContext(ctx, "Address cache write failed", "key", key, "error", err)
		}
	}

	return address, nil
}
