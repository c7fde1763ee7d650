// Package bbolt implements the ports.DurationCache interface using bbolt
// (embedded B+ tree). One bucket maps absolute file paths to JSON-serialized
// probe records. Writes are transactional — a crash mid-write cannot corrupt
// previously committed records.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/soundpack/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketDurations = []byte("durations")

// Cache implements ports.DurationCache backed by bbolt.
type Cache struct {
	db *bolt.DB
}

// NewCache opens (or creates) a bbolt database at the given path.
func NewCache(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDurations)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying bbolt database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the record stored for path. ok is false on a miss.
func (c *Cache) Get(path string) (ports.CachedDuration, bool, error) {
	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := tx.Bucket(bucketDurations).Get([]byte(path)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return ports.CachedDuration{}, false, err
	}
	if raw == nil {
		return ports.CachedDuration{}, false, nil
	}

	var rec ports.CachedDuration
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ports.CachedDuration{}, false, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, true, nil
}

// Put stores or replaces the record for path.
func (c *Cache) Put(path string, rec ports.CachedDuration) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDurations).Put([]byte(path), raw)
	})
}
