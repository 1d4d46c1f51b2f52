package app

import (
	"context"
	"time"

	"go.trai.ch/bento/internal/adapters/cacheserver" //nolint:depguard // Wired in app layer
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	BuildOptions
	// Addr overrides the configured listen address.
	Addr  string
	Watch bool
}

// Serve serves the build output until ctx is done, optionally running a watch build alongside.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	cfg := settings.Serve
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	srv, err := cacheserver.New(cfg, a.Logger, a.Metrics, a.Gatherer)
	if err != nil {
		return err
	}
	if _, err := srv.Listen(cfg.Addr); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Watch {
		g.Go(func() error {
			build := opts.BuildOptions
			build.Build.Watch = true
			return a.Build(ctx, build)
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Close(shutdownCtx)
	})
	return g.Wait()
}
