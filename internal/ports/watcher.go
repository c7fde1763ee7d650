package ports

// Watcher monitors the asset directories for changes and triggers a manifest
// rebuild. Implementations watch the given directories only, not their
// subtrees — the manifest scan itself is single-level.
type Watcher interface {
	// Watch starts monitoring dirs. onChange is called with the absolute
	// path of each changed file. The callback may be invoked from any
	// goroutine. Returns an error if a directory doesn't exist or
	// permissions are insufficient.
	Watch(dirs []string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
