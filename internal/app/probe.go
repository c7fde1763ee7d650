package app

import (
	"os"
	"path/filepath"

	"github.com/corey/soundpack/internal/ports"
)

// CachingProber wraps a DurationProber with the persistent decode cache.
// A cached record is reused only when the file's size and mtime both match;
// any change on disk forces a fresh decode. Cache errors degrade to plain
// probing — they never fail the build.
type CachingProber struct {
	prober ports.DurationProber
	cache  ports.DurationCache
}

// NewCachingProber wraps prober with cache.
func NewCachingProber(prober ports.DurationProber, cache ports.DurationCache) *CachingProber {
	return &CachingProber{prober: prober, cache: cache}
}

// Probe returns the duration of the file at path in seconds, consulting the
// cache first. Stat failures are returned to the caller: if the file can't
// be statted it can't be decoded either.
func (cp *CachingProber) Probe(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}

	if rec, ok, err := cp.cache.Get(key); err == nil && ok &&
		rec.Size == info.Size() && rec.ModTimeNs == info.ModTime().UnixNano() {
		return rec.Seconds, nil
	}

	seconds, err := cp.prober.Probe(path)
	if err != nil {
		return 0, err
	}

	// A failed cache write just means decoding again next run.
	_ = cp.cache.Put(key, ports.CachedDuration{
		Size:      info.Size(),
		ModTimeNs: info.ModTime().UnixNano(),
		Seconds:   seconds,
	})
	return seconds, nil
}
