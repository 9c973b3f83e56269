package middleware

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/rs/zerolog"
)

// CredentialCache caches verified credentials keyed by the raw Authorization
// header value, so repeated requests with the same header skip re-parsing
// and re-verification. Entries are only written after verification succeeds;
// a hit therefore implies a valid credential.
type CredentialCache[C any] struct {
	cache *ristretto.Cache[string, C]
	ttl   time.Duration
	log   zerolog.Logger
}

// CacheConfig sizes the credential cache.
type CacheConfig struct {
	// MaxEntries caps the number of cached header values.
	MaxEntries int64
	// TTLSeconds bounds how long a verified credential stays cached.
	// Zero means entries never expire.
	TTLSeconds int64
}

// DefaultCacheConfig is sized for a single-tenant service with a handful of
// active credentials.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{MaxEntries: 1024, TTLSeconds: 300}
}

// NewCredentialCache creates a ristretto-backed credential cache.
func NewCredentialCache[C any](cfg CacheConfig, log zerolog.Logger) (*CredentialCache[C], error) {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultCacheConfig().MaxEntries
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, C]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &CredentialCache[C]{
		cache: cache,
		ttl:   time.Duration(cfg.TTLSeconds) * time.Second,
		log:   log.With().Str("component", "credential_cache").Logger(),
	}, nil
}

// TTL returns how long entries stay cached; zero means no expiry.
func (c *CredentialCache[C]) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached credential for a header value, if present.
func (c *CredentialCache[C]) Get(headerValue string) (C, bool) {
	return c.cache.Get(headerValue)
}

// Put stores a verified credential under its header value, expiring after
// the configured TTL.
func (c *CredentialCache[C]) Put(headerValue string, cred C) {
	if c.ttl > 0 {
		c.cache.SetWithTTL(headerValue, cred, 1, c.ttl)
	} else {
		c.cache.Set(headerValue, cred, 1)
	}
}

// Wait blocks until pending writes are applied. Ristretto applies writes
// asynchronously; call this before asserting on cache contents in tests.
func (c *CredentialCache[C]) Wait() {
	c.cache.Wait()
}

// Stats returns cache hit and miss counts.
func (c *CredentialCache[C]) Stats() (hits, misses uint64) {
	metrics := c.cache.Metrics
	return metrics.Hits(), metrics.Misses()
}

// Close releases the cache's resources.
func (c *CredentialCache[C]) Close() {
	c.cache.Close()
	c.log.Debug().Msg("credential cache closed")
}
