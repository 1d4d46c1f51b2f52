// Package fs provides file system adapters for inspecting and cleaning build output.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields every directory below root named name, without descending into it.
// Version control and dependency directories are skipped.
func (w *Walker) WalkDirs(root, name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable entries are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			if path != root && d.Name() == name {
				if !yield(path) {
					return filepath.SkipAll
				}
				return filepath.SkipDir
			}
			return nil
		})
	}
}

func skipDir(name string) bool {
	return name == ".git" || name == "node_modules"
}
