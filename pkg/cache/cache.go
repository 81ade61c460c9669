// Package cache provides pluggable result and HTTP-response caching.
//
// Forest construction is deterministic, so a result computed once for a
// given point set, mode and K never changes. The [Cache] interface hides
// the storage backend:
//   - [FileCache]: per-user directory for CLI usage
//   - [RedisCache]: shared cache for API deployments
//   - [MongoCache]: persistent cache collection with TTL expiry
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so that all backends agree on naming and
// so deployments can prefix keys for isolation (see [NewScopedKeyer]).
package cache

import (
	"context"
	"time"
)

// Default TTLs per data class. Construction results are deterministic in
// their inputs, so they age out slowly; fetched HTTP bodies may change at
// the source and expire sooner.
const (
	// TTLResult is how long construction results stay cached.
	TTLResult = 7 * 24 * time.Hour

	// TTLHTTP is how long fetched response bodies stay cached.
	TTLHTTP = 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must treat a missing key as (nil, false, nil), never as
// an error: misses are the common case, not a failure.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources (connections, file handles).
	Close() error
}

// ResultKeyOpts captures everything that makes a construction run unique
// besides the point set itself.
type ResultKeyOpts struct {
	Mode string // "cluster" or "connect"
	K    int    // edge budget, cluster mode only
}

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs yield equal keys across processes and backends.
type Keyer interface {
	// HTTPKey builds a key for a cached HTTP response body.
	HTTPKey(url string) string

	// ResultKey builds a key for a construction result. pointsHash is the
	// content hash of the raw point input.
	ResultKey(pointsHash string, opts ResultKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a short type prefix plus a
// SHA-256 of the identifying parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey builds a key for a cached HTTP response body.
func (k *DefaultKeyer) HTTPKey(url string) string {
	return hashKey("http", url)
}

// ResultKey builds a key for a construction result.
func (k *DefaultKeyer) ResultKey(pointsHash string, opts ResultKeyOpts) string {
	return hashKey("result", pointsHash, opts.Mode, opts.K)
}
