package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/engine/selection"
)

// Common carries the flags shared by every command.
type Common struct {
	ConfigPath string
	JSONLogs   bool
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	Common
	Selection domain.SelectionFlags
	Build     domain.BuildOptions
}

// Build builds the selected components. In watch mode it keeps rebuilding until ctx is done.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	opts.Build.CoreRuntimeOnly = opts.Selection.CoreRuntimeOnly
	opts.Build.NoComponents = opts.Selection.NoComponents

	runID := uuid.NewString()
	ctx, span := a.Tracer.Start(ctx, "build", ports.WithQuiet())
	span.SetAttribute("bento.run_id", runID)
	span.SetAttribute("bento.minify", opts.Build.Minify)

	err = a.newAggregator(settings).BuildAll(ctx, domain.NewRegistry(), a.manifestSource(settings), opts.Selection, opts.Build)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	if !opts.Build.Watch {
		return nil
	}
	a.Logger.Info("watching for changes, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Common
	Selection domain.SelectionFlags
	PreBuild  bool
}

// List prints the components the given selection flags cover, one per line.
func (a *App) List(_ context.Context, opts ListOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	reg := domain.NewRegistry()
	if err := reg.EnsureInitialized(a.manifestSource(settings)); err != nil {
		return err
	}
	names, err := selection.NewFilter(a.Lists).Select(reg, opts.Selection, opts.PreBuild)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return nil
	}
	_, err = fmt.Fprintln(a.stdout, strings.Join(names, "\n"))
	return err
}
