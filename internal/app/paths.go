// Package app wires the domain logic to its adapters: resolved state-dir
// paths and the cache-backed duration prober.
package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .soundpack/ state
// directory. All fields are pre-computed strings.
type Paths struct {
	Root string // .soundpack/
	DB   string // .soundpack/soundpack.db
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".soundpack")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "soundpack.db"),
	}
}

// EnsureDirs creates the state directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
