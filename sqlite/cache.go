package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/luminary"
)

// Compile-time interface verification.
var _ luminary.Cache = (*Cache)(nil)

// Cache implements luminary.Cache using SQLite. Keys are hashed with
// xxhash so arbitrarily long inputs (SPARQL queries, names) stay compact.
type Cache struct {
	db *DB

	// now is overridable for tests.
	now func() time.Time
}

// NewCache creates a new Cache.
func NewCache(db *DB) *Cache {
	return &Cache{db: db, now: time.Now}
}

// Get returns the cached value and whether a live entry was found.
// Expired entries are misses; their storage is reclaimed by Evict.
func (c *Cache) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	var value []byte
	var expiresAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT value, expires_at FROM cache
		WHERE namespace = ? AND key_hash = ?
	`, namespace, hashKey(key)).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	expiry, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return nil, false, err
	}
	if !c.now().UTC().Before(expiry) {
		return nil, false, nil
	}
	return value, true, nil
}

// Set stores a value, replacing any existing entry.
func (c *Cache) Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return luminary.Errorf(luminary.EINVALID, "cache TTL must be positive")
	}

	expiresAt := c.now().UTC().Add(ttl).Format(time.RFC3339)
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache (namespace, key_hash, value, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key_hash) DO UPDATE SET
			value = excluded.value,
			expires_at = excluded.expires_at
	`, namespace, hashKey(key), value, expiresAt)
	return err
}

// Evict removes expired entries and returns how many were removed.
func (c *Cache) Evict(ctx context.Context) (int, error) {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM cache WHERE expires_at <= ?
	`, c.now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func hashKey(key string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(key))
}
