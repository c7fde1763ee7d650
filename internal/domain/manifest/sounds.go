package manifest

import (
	"sort"
	"strings"
)

// BuildSounds derives one SoundEntry per .wav filename. Non-.wav names,
// including the __icon.* files themselves, never produce entries — icons
// are only ever referenced from the sound they belong to.
//
// audioPrefix and iconPrefix are the manifest-internal path roots; they are
// fixed per variant and independent of where the directory was scanned from.
func BuildSounds(filenames []string, audioPrefix, iconPrefix string) []SoundEntry {
	nameSet := make(map[string]struct{}, len(filenames))
	for _, n := range filenames {
		nameSet[n] = struct{}{}
	}

	entries := []SoundEntry{}
	for _, name := range filenames {
		if !strings.HasSuffix(name, soundExt) {
			continue
		}
		entry := SoundEntry{Audio: audioPrefix + name}
		base := strings.TrimSuffix(name, soundExt)
		for _, ext := range iconExts {
			iconName := base + iconInfix + ext
			if _, ok := nameSet[iconName]; ok {
				icon := iconPrefix + iconName
				entry.Icon = &icon
				break
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Audio < entries[j].Audio })
	return entries
}
