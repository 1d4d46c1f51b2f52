package orchestrator

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/engine/selection"
)

// Aggregator builds the selected components of a registry concurrently.
type Aggregator struct {
	orchestrator *Orchestrator
	filter       *selection.Filter
	tracer       ports.Tracer
	reporter     ports.StepReporter
	logger       ports.Logger
}

// NewAggregator creates an Aggregator.
func NewAggregator(
	orchestrator *Orchestrator,
	filter *selection.Filter,
	tracer ports.Tracer,
	reporter ports.StepReporter,
	logger ports.Logger,
) *Aggregator {
	return &Aggregator{
		orchestrator: orchestrator,
		filter:       filter,
		tracer:       tracer,
		reporter:     reporter,
		logger:       logger,
	}
}

// Plan initializes reg and returns the components a build with flags and opts covers, in registry order.
// A CSS-only build covers every registered component.
func (a *Aggregator) Plan(
	reg *domain.Registry,
	load domain.ManifestSource,
	flags domain.SelectionFlags,
	opts domain.BuildOptions,
) ([]domain.Component, error) {
	if err := reg.EnsureInitialized(load); err != nil {
		return nil, err
	}
	selected, err := a.filter.Select(reg, flags, false)
	if err != nil {
		return nil, err
	}

	var plan []domain.Component
	for c := range reg.Components() {
		if opts.CompileOnlyCSS || slices.Contains(selected, c.Name) {
			plan = append(plan, c)
		}
	}
	return plan, nil
}

// BuildAll builds every planned component concurrently and waits for all of them.
//
// Every component runs to completion and all failures are returned together as
// domain.BuildFailures in registry order. With ContinueOnError the failures are
// logged instead and the build succeeds.
func (a *Aggregator) BuildAll(
	ctx context.Context,
	reg *domain.Registry,
	load domain.ManifestSource,
	flags domain.SelectionFlags,
	opts domain.BuildOptions,
) error {
	start := time.Now()

	plan, err := a.Plan(reg, load, flags, opts)
	if err != nil {
		return err
	}

	names := make([]string, len(plan))
	for i, c := range plan {
		names[i] = c.Name
	}
	a.tracer.EmitPlan(ctx, names)

	errs := make([]error, len(plan))
	var wg sync.WaitGroup
	for i, c := range plan {
		wg.Go(func() {
			errs[i] = a.orchestrator.BuildComponent(ctx, c, opts.WithComponent(c))
		})
	}
	wg.Wait()

	var failures domain.BuildFailures
	for i, err := range errs {
		if err != nil {
			failures = append(failures, domain.ComponentFailure{Component: plan[i].Name, Err: err})
		}
	}
	if len(failures) > 0 {
		err := errors.Join(domain.ErrComponentBuildFailed, failures)
		if !opts.ContinueOnError {
			return err
		}
		a.logger.Error(err)
	}

	if !opts.CompileOnlyCSS && len(plan) > 0 {
		a.reporter.EndBuildStep(opts.BuildLabel(), "components", start)
	}
	return nil
}
