package orchestrator_test

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.trai.ch/bento/internal/adapters/metrics"
	"go.trai.ch/bento/internal/adapters/telemetry"
	"go.trai.ch/bento/internal/adapters/watcher"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/core/ports/mocks"
	"go.trai.ch/bento/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

// fakeWatcher delivers events pushed by the test.
type fakeWatcher struct {
	events   chan ports.WatchEvent
	roots    []string
	stopOnce sync.Once
}

func (w *fakeWatcher) Start(_ context.Context, roots ...string) error {
	w.roots = roots
	return nil
}

func (w *fakeWatcher) Stop() error {
	w.stopOnce.Do(func() { close(w.events) })
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for e := range w.events {
			if !yield(e) {
				return
			}
		}
	}
}

func (w *fakeWatcher) write(path string) {
	w.events <- ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

// fakeFactory hands out fake watchers, real debouncers and, unless fingerprints is set,
// real fingerprint stores.
type fakeFactory struct {
	mu           sync.Mutex
	watchers     []*fakeWatcher
	fingerprints func() ports.Fingerprinter
}

func (f *fakeFactory) NewWatcher() (ports.Watcher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := &fakeWatcher{events: make(chan ports.WatchEvent, 16)}
	f.watchers = append(f.watchers, w)
	return w, nil
}

func (f *fakeFactory) NewDebouncer(window time.Duration, callback func([]string)) ports.Debouncer {
	return watcher.NewDebouncer(window, callback)
}

func (f *fakeFactory) NewFingerprinter() ports.Fingerprinter {
	if f.fingerprints != nil {
		return f.fingerprints()
	}
	return watcher.NewFingerprints()
}

func (f *fakeFactory) watcher(i int) *fakeWatcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.watchers[i]
}

type fixture struct {
	toolchain *mocks.MockToolchain
	logger    *mocks.MockLogger
	factory   *fakeFactory
	layout    domain.Layout
	orch      *orchestrator.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	layout := domain.Layout{
		ComponentsRoot: filepath.Join(root, "src"),
		BuildDir:       filepath.Join(root, "build"),
		DistDir:        filepath.Join(root, "dist"),
	}

	f := &fixture{
		toolchain: mocks.NewMockToolchain(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		factory:   &fakeFactory{},
		layout:    layout,
	}
	coordinator := orchestrator.NewCoordinator(f.factory, f.logger, time.Second)
	f.orch = orchestrator.New(f.toolchain, telemetry.NewNoOpTracer(), metrics.New(), f.logger, coordinator, layout)
	return f
}

func (f *fixture) dir(c domain.Component) string {
	return f.layout.ComponentDir(c.Name, c.Version)
}

func component(name string, hasCSS bool) domain.Component {
	return domain.Component{Name: name, Version: "1.0", CompatVersion: domain.CompatVersion, HasCSS: hasCSS}
}

// expectSteps expects the steps shared by builds and rebuilds.
func (f *fixture) expectSteps(c domain.Component, times int) {
	dir := f.dir(c)
	if c.HasCSS {
		f.toolchain.EXPECT().CompileCSS(gomock.Any(), dir, c.Name, c.Version, gomock.Any()).Return(nil).Times(times)
	}
	f.toolchain.EXPECT().CompileGrammar(gomock.Any(), dir, orchestrator.GrammarPattern).Return(nil).Times(times)
	f.toolchain.EXPECT().BuildNpmBinaries(gomock.Any(), dir, c.Name, gomock.Any()).Return(nil).Times(times)
	f.toolchain.EXPECT().BuildNpmCSS(gomock.Any(), dir, gomock.Any()).Return(nil).Times(times)
}
