// Package orchestrator schedules the build steps of components and fans builds out across a selection.
package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// GrammarPattern matches the grammar sources of a component, relative to its directory.
const GrammarPattern = "**/*.jison"

// Build step names, used in spans, metrics and error metadata.
const (
	StepCSS         = "css"
	StepGrammar     = "grammar"
	StepNpmBinaries = "npm-binaries"
	StepNpmCSS      = "npm-css"
	StepBinaries    = "binaries"
	StepBundle      = "bundle"
)

// Orchestrator builds one component at a time.
type Orchestrator struct {
	toolchain ports.Toolchain
	tracer    ports.Tracer
	metrics   ports.BuildMetrics
	logger    ports.Logger
	watch     *Coordinator
	layout    domain.Layout
}

// New creates an Orchestrator. The coordinator is only used for builds with Watch set.
func New(
	toolchain ports.Toolchain,
	tracer ports.Tracer,
	metrics ports.BuildMetrics,
	logger ports.Logger,
	watch *Coordinator,
	layout domain.Layout,
) *Orchestrator {
	return &Orchestrator{
		toolchain: toolchain,
		tracer:    tracer,
		metrics:   metrics,
		logger:    logger,
		watch:     watch,
		layout:    layout,
	}
}

// BuildComponent runs the build steps of c concurrently and waits for all of them.
//
// A CSS-only build of a component without CSS does nothing. A rebuild skips the
// standalone bundle. With Watch set, watchers are attached before any step runs
// and keep rebuilding c until ctx is done.
func (o *Orchestrator) BuildComponent(ctx context.Context, c domain.Component, opts domain.BuildOptions) error {
	if opts.CompileOnlyCSS && !c.HasCSS {
		return nil
	}

	err := o.buildComponent(ctx, c, opts)
	o.metrics.ObserveComponent(c.Name, opts.IsRebuild, err)
	return err
}

func (o *Orchestrator) buildComponent(ctx context.Context, c domain.Component, opts domain.BuildOptions) error {
	dir := o.layout.ComponentDir(c.Name, c.Version)

	if opts.Watch {
		if err := o.watchComponent(ctx, c, dir, opts); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	if c.HasCSS {
		css := func(ctx context.Context) error {
			if err := os.MkdirAll(o.layout.CSSDir(), domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", o.layout.CSSDir())
			}
			return o.toolchain.CompileCSS(ctx, dir, c.Name, c.Version, opts)
		}
		if opts.CompileOnlyCSS {
			return o.step(ctx, c, StepCSS, css)
		}
		g.Go(func() error { return o.step(gctx, c, StepCSS, css) })
	}

	g.Go(func() error {
		return o.step(gctx, c, StepGrammar, func(ctx context.Context) error {
			return o.toolchain.CompileGrammar(ctx, dir, GrammarPattern)
		})
	})
	g.Go(func() error {
		return o.step(gctx, c, StepNpmBinaries, func(ctx context.Context) error {
			return o.toolchain.BuildNpmBinaries(ctx, dir, c.Name, opts)
		})
	})
	g.Go(func() error {
		return o.step(gctx, c, StepNpmCSS, func(ctx context.Context) error {
			return o.toolchain.BuildNpmCSS(ctx, dir, opts)
		})
	})
	if len(opts.Binaries) > 0 {
		g.Go(func() error {
			return o.step(gctx, c, StepBinaries, func(ctx context.Context) error {
				return o.toolchain.BuildBinaries(ctx, dir, opts.Binaries, opts)
			})
		})
	}

	if opts.IsRebuild {
		return g.Wait()
	}

	bentoName := domain.BentoName(c.Name)
	bundle := ports.BundleOptions{
		Filename:   domain.BuildFilename(bentoName, c.Version, domain.ModeStandalone, opts.Minify),
		Wrapper:    "none",
		ExtraGlobs: append(slices.Clone(opts.ExtraGlobs), filepath.ToSlash(filepath.Join(dir, "**", "*.js"))),
		Minify:     opts.Minify,
	}
	g.Go(func() error {
		return o.step(gctx, c, StepBundle, func(ctx context.Context) error {
			return o.toolchain.BundleJS(ctx, dir, bentoName, bundle)
		})
	})
	if opts.Watch {
		if err := o.watchBundle(ctx, c, dir, bentoName, bundle); err != nil {
			_ = g.Wait()
			return err
		}
	}

	return g.Wait()
}

// step runs fn inside a span and records its duration.
func (o *Orchestrator) step(ctx context.Context, c domain.Component, name string, fn func(context.Context) error) error {
	ctx, span := o.tracer.Start(ctx, c.Name+" "+name)
	defer span.End()
	span.SetAttribute("bento.component", c.Name)
	span.SetAttribute("bento.step", name)

	start := time.Now()
	err := fn(ctx)
	o.metrics.ObserveStep(c.Name, name, time.Since(start), err)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrStepFailed.Error()), "component", c.Name)
		err = zerr.With(err, "step", name)
		span.RecordError(err)
	}
	return err
}

// watchComponent rebuilds c whenever one of its stylesheets or grammar files changes.
func (o *Orchestrator) watchComponent(ctx context.Context, c domain.Component, dir string, opts domain.BuildOptions) error {
	patterns := []string{
		filepath.ToSlash(filepath.Join(dir, "**", "*.css")),
		filepath.ToSlash(filepath.Join(dir, GrammarPattern)),
	}
	rebuild := opts.ForRebuild()
	return o.watch.Watch(ctx, c.Name, patterns, func(ctx context.Context, _ []string) {
		if err := o.BuildComponent(ctx, c, rebuild); err != nil {
			o.logger.Error(err)
		}
	})
}

// watchBundle rebundles c whenever one of the scripts it depends on changes.
func (o *Orchestrator) watchBundle(
	ctx context.Context,
	c domain.Component,
	dir, entryName string,
	bundle ports.BundleOptions,
) error {
	return o.watch.Watch(ctx, c.Name, bundle.ExtraGlobs, func(ctx context.Context, _ []string) {
		err := o.step(ctx, c, StepBundle, func(ctx context.Context) error {
			return o.toolchain.BundleJS(ctx, dir, entryName, bundle)
		})
		if err != nil {
			o.logger.Error(err)
		}
	})
}
