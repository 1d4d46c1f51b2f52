package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bento/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ManifestNodeID,
			config.SettingsNodeID,
			config.ListNodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			linear.ReporterNodeID,
			metrics.NodeID,
			watcher.FactoryNodeID,
			fs.CleanerNodeID,
			fs.VerifierNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		p   Ports
		err error
	)
	if p.Manifests, err = graft.Dep[ports.ManifestLoader](ctx); err != nil {
		return nil, err
	}
	if p.Settings, err = graft.Dep[ports.SettingsLoader](ctx); err != nil {
		return nil, err
	}
	if p.Lists, err = graft.Dep[ports.ComponentListReader](ctx); err != nil {
		return nil, err
	}
	if p.Executor, err = graft.Dep[ports.Executor](ctx); err != nil {
		return nil, err
	}
	if p.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if p.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}
	if p.Reporter, err = graft.Dep[ports.StepReporter](ctx); err != nil {
		return nil, err
	}
	m, err := graft.Dep[*metrics.Metrics](ctx)
	if err != nil {
		return nil, err
	}
	p.Metrics, p.Gatherer = m, m.Registry()
	if p.Watchers, err = graft.Dep[ports.WatcherFactory](ctx); err != nil {
		return nil, err
	}
	if p.Cleaner, err = graft.Dep[ports.OutputCleaner](ctx); err != nil {
		return nil, err
	}
	if p.Verifier, err = graft.Dep[ports.OutputVerifier](ctx); err != nil {
		return nil, err
	}
	return New(p), nil
}
