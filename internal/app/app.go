// Package app implements the application layer for bento.
package app

import (
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/bento/internal/adapters/compiler" //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/engine/orchestrator"
	"go.trai.ch/bento/internal/engine/selection"
	"go.trai.ch/zerr"
)

// Ports groups the collaborators of the App.
type Ports struct {
	Manifests ports.ManifestLoader
	Settings  ports.SettingsLoader
	Lists     ports.ComponentListReader
	Executor  ports.Executor
	Logger    ports.Logger
	Tracer    ports.Tracer
	Reporter  ports.StepReporter
	Metrics   ports.BuildMetrics
	Gatherer  prometheus.Gatherer
	Watchers  ports.WatcherFactory
	Cleaner   ports.OutputCleaner
	Verifier  ports.OutputVerifier
}

// App represents the main application logic.
type App struct {
	Ports

	stdout    io.Writer
	toolchain func(ports.Executor, *domain.Settings) ports.Toolchain
}

// New creates a new App instance.
func New(p Ports) *App {
	return &App{
		Ports:  p,
		stdout: os.Stdout,
		toolchain: func(executor ports.Executor, settings *domain.Settings) ports.Toolchain {
			return compiler.New(executor, settings)
		},
	}
}

// WithStdout redirects command output, such as listings and resolved paths, to w.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithToolchain replaces the compiler toolchain. This is primarily used for testing.
func (a *App) WithToolchain(fn func(ports.Executor, *domain.Settings) ports.Toolchain) *App {
	a.toolchain = fn
	return a
}

// loadSettings loads the settings at path and applies the logging mode they request.
func (a *App) loadSettings(path string, jsonLogs bool) (*domain.Settings, error) {
	settings, err := a.Settings.Load(path)
	if err != nil {
		return nil, err
	}
	if jsonLogs || settings.JSONLogs {
		if l, ok := a.Logger.(interface{ SetJSON(bool) }); ok {
			l.SetJSON(true)
		}
	}
	return settings, nil
}

// manifestSource returns the loader of the manifest named by settings.
func (a *App) manifestSource(settings *domain.Settings) domain.ManifestSource {
	return func() (*domain.Manifest, error) {
		m, err := a.Manifests.Load(settings.Manifest)
		if err != nil {
			return nil, zerr.With(err, "manifest", settings.Manifest)
		}
		return m, nil
	}
}

// newAggregator wires the build engine for one invocation.
func (a *App) newAggregator(settings *domain.Settings) *orchestrator.Aggregator {
	coordinator := orchestrator.NewCoordinator(a.Watchers, a.Logger, settings.Debounce)
	orch := orchestrator.New(
		a.toolchain(a.Executor, settings),
		a.Tracer,
		a.Metrics,
		a.Logger,
		coordinator,
		settings.Layout(),
	)
	return orchestrator.NewAggregator(orch, selection.NewFilter(a.Lists), a.Tracer, a.Reporter, a.Logger)
}
