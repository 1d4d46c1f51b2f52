package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

// ignoredSegment marks packaged output directories, which are never watched.
const ignoredSegment = "dist"

// Coordinator attaches debounced file watchers to components.
type Coordinator struct {
	factory ports.WatcherFactory
	logger  ports.Logger
	window  time.Duration
}

// NewCoordinator creates a Coordinator collapsing bursts of events within window.
func NewCoordinator(factory ports.WatcherFactory, logger ports.Logger, window time.Duration) *Coordinator {
	if window <= 0 {
		window = domain.DefaultDebounce
	}
	return &Coordinator{factory: factory, logger: logger, window: window}
}

// Watch starts watching the files matching patterns and returns once the watcher is attached.
//
// Each burst of content changes results in one call to onChange with the changed paths.
// Writes count, as do creates and renames that leave a regular file behind, which is how
// editors save atomically. Paths below a dist directory are ignored. Every call keeps its
// own fingerprints, so watchers of the same file all see its changes. When ctx is done
// the watcher is closed and a pending call is cancelled.
func (w *Coordinator) Watch(
	ctx context.Context,
	subject string,
	patterns []string,
	onChange func(ctx context.Context, paths []string),
) error {
	watcher, err := w.factory.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "component", subject)
	}
	if err := watcher.Start(ctx, watchRoots(patterns)...); err != nil {
		_ = watcher.Stop()
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "component", subject)
	}

	fingerprints := w.factory.NewFingerprinter()
	debouncer := w.factory.NewDebouncer(w.window, func(paths []string) {
		if ctx.Err() != nil {
			return
		}
		onChange(ctx, paths)
	})

	go func() {
		<-ctx.Done()
		debouncer.Stop()
		if err := watcher.Stop(); err != nil {
			w.logger.Error(err)
		}
	}()

	go func() {
		for event := range watcher.Events() {
			if relevant(event, patterns, fingerprints) {
				debouncer.Add(event.Path)
			}
		}
	}()

	return nil
}

// relevant reports whether event is a content change of a watched file.
func relevant(event ports.WatchEvent, patterns []string, fingerprints ports.Fingerprinter) bool {
	if event.Operation != ports.OpWrite && event.Operation != ports.OpCreate && event.Operation != ports.OpRename {
		return false
	}
	path := filepath.ToSlash(filepath.Clean(event.Path))
	if slices.Contains(strings.Split(path, "/"), ignoredSegment) {
		return false
	}
	if !matchAny(patterns, path) {
		return false
	}
	if event.Operation != ports.OpWrite {
		// A rename also reports the old name, which no longer exists.
		if info, err := os.Stat(event.Path); err != nil || !info.Mode().IsRegular() {
			return false
		}
	}
	changed, err := fingerprints.Changed(event.Path)
	if err != nil {
		return true
	}
	return changed
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// watchRoots returns the distinct static directory prefixes of patterns.
func watchRoots(patterns []string) []string {
	var roots []string
	for _, p := range patterns {
		root := staticPrefix(p)
		if !slices.Contains(roots, root) {
			roots = append(roots, root)
		}
	}
	return roots
}

// staticPrefix returns the directory part of pattern preceding its first glob segment.
func staticPrefix(pattern string) string {
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	var static []string
	for _, s := range segments[:len(segments)-1] {
		if strings.ContainsAny(s, "*?[{") {
			break
		}
		static = append(static, s)
	}
	if len(static) == 0 {
		return "."
	}
	return filepath.FromSlash(strings.Join(static, "/"))
}
