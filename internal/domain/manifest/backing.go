package manifest

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/soundpack/internal/logger"
	"github.com/corey/soundpack/internal/ports"
)

// BuildBackingTracks derives one BackingTrackEntry per .mp3 filename in dir.
// A file whose duration cannot be read still gets an entry — duration stays
// null, a warning names the file and the cause, and the build continues.
func BuildBackingTracks(dir string, filenames []string, prefix string, prober ports.DurationProber) []BackingTrackEntry {
	entries := []BackingTrackEntry{}
	for _, name := range filenames {
		if !strings.HasSuffix(name, backingExt) {
			continue
		}
		entry := BackingTrackEntry{Audio: prefix + name}
		seconds, err := prober.Probe(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("could not read duration", "file", name, "error", err)
		} else {
			entry.Duration = &seconds
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Audio < entries[j].Audio })
	return entries
}
