package fs

import (
	"os"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputCleaner = (*Cleaner)(nil)

// Cleaner removes build output from disk.
type Cleaner struct {
	walker *Walker
}

// NewCleaner creates a new Cleaner.
func NewCleaner(walker *Walker) *Cleaner {
	return &Cleaner{walker: walker}
}

// Clean removes the build and dist trees and every component's dist directory.
// Paths that do not exist are not reported.
func (c *Cleaner) Clean(layout domain.Layout) ([]string, error) {
	targets := []string{layout.BuildDir, layout.DistDir}
	for dir := range c.walker.WalkDirs(layout.ComponentsRoot, domain.PackageDistDirName) {
		targets = append(targets, dir)
	}

	var removed []string
	for _, path := range targets {
		if path == "" {
			continue
		}
		if _, err := os.Lstat(path); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return removed, zerr.With(zerr.Wrap(err, "failed to remove output"), "path", path)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
