package ports

import (
	"context"
	"iter"
	"time"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher defines the interface for watching file system changes.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directories recursively.
	// It returns an error if any root cannot be watched.
	Start(ctx context.Context, roots ...string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}

// Debouncer coalesces bursts of changed paths into a single callback.
type Debouncer interface {
	// Add records a changed path and restarts the quiet window.
	Add(path string)
	// Stop cancels any pending callback.
	Stop()
}

// WatcherFactory creates independent watchers and debouncers, one per watched subject.
type WatcherFactory interface {
	NewWatcher() (Watcher, error)
	NewDebouncer(window time.Duration, callback func(paths []string)) Debouncer
	// NewFingerprinter returns an empty fingerprint store. Watchers of overlapping
	// files each need their own, or the first to see a change hides it from the rest.
	NewFingerprinter() Fingerprinter
}
