package luminary

import (
	"context"
	"time"
)

// Cache TTLs for upstream responses. Biography and quote pages change
// rarely; knowledge-graph results even less so.
const (
	BiographyTTL = 12 * time.Hour
	QuoteTTL     = 12 * time.Hour
	KnowledgeTTL = 24 * time.Hour
)

// Cache stores upstream responses under a namespace and key with a
// per-entry time-to-live. Expired entries are never returned; reclaiming
// their storage is the implementation's eviction concern.
type Cache interface {
	// Get returns the cached value and whether a live entry was found.
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)

	// Set stores a value, replacing any existing entry.
	// Returns EINVALID if ttl is not positive.
	Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error

	// Evict removes expired entries and returns how many were removed.
	Evict(ctx context.Context) (int, error)
}
