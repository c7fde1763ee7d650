// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// CachedDuration is one persisted probe result. Size and ModTimeNs pin the
// record to a specific version of the file on disk; if either differs at
// lookup time the record is stale and the file must be decoded again.
type CachedDuration struct {
	Size      int64   `json:"size"`
	ModTimeNs int64   `json:"mtime_ns"`
	Seconds   float64 `json:"seconds"`
}

// DurationCache persists probe results between runs so unchanged backing
// tracks are not decoded twice. The backing store (bbolt) lives in
// internal/adapters/bbolt. The manifest itself is always rebuilt from
// scratch — only the decode step is cached.
type DurationCache interface {
	// Get returns the record stored for path. ok is false on a miss.
	Get(path string) (rec CachedDuration, ok bool, err error)

	// Put stores or replaces the record for path.
	Put(path string, rec CachedDuration) error

	// Close releases the underlying database.
	Close() error
}
