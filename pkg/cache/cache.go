// Package cache stores rendered artifacts between runs.
//
// Keys are content-addressed: [Keyer] hashes the parsed word together with
// every option that changes the output, so a cached SVG is only reused for a
// byte-identical request. A layout key hashes to the layout hash, and each
// rendered format is stored under an artifact key derived from it.
// [ScopedKeyer] keeps nodelink diagrams apart from ring drawings. [FileCache]
// backs the CLI and [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour
