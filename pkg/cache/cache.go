// -----------------------------------------------------------------------------
// Cache Package
// -----------------------------------------------------------------------------
// Byte-oriented cache abstraction used for read-heavy data (seat
// listings). Callers marshal their own payloads; the cache only moves
// bytes and TTLs.
// -----------------------------------------------------------------------------

package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist or has
// expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the interface every cache backend implements.
type Cache interface {
	// Get returns the value stored at key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value at key for ttl. A zero ttl stores without
	// expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)
}
