package manifest

import (
	"fmt"
	"os"
)

// ListDir returns the names of the top-level entries in dir. No recursion:
// assets live flat in their directory and subdirectories are never scanned.
// A missing or unreadable directory is fatal to the run.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
