package orchestrator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports/mocks"
	"go.trai.ch/bento/internal/engine/orchestrator"
	"go.trai.ch/bento/internal/engine/selection"
	"go.uber.org/mock/gomock"
)

type aggregateFixture struct {
	*fixture
	tracer   *mocks.MockTracer
	reporter *mocks.MockStepReporter
	agg      *orchestrator.Aggregator
}

func newAggregateFixture(t *testing.T) *aggregateFixture {
	t.Helper()
	f := newFixture(t)
	ctrl := gomock.NewController(t)

	tracer := mocks.NewMockTracer(ctrl)
	reporter := mocks.NewMockStepReporter(ctrl)
	filter := selection.NewFilter(mocks.NewMockComponentListReader(ctrl))

	return &aggregateFixture{
		fixture:  f,
		tracer:   tracer,
		reporter: reporter,
		agg:      orchestrator.NewAggregator(f.orch, filter, tracer, reporter, f.logger),
	}
}

func manifest() domain.ManifestSource {
	return func() (*domain.Manifest, error) {
		return &domain.Manifest{Components: []domain.ManifestEntry{
			{Name: "amp-accordion", Version: "1.0", Options: domain.ComponentOptions{HasCSS: true}},
			{Name: "amp-bind", Version: "1.0"},
			{Name: "amp-fit-text", Version: "1.0"},
		}}, nil
	}
}

func (f *aggregateFixture) expectFullBuild(c domain.Component, err error) {
	f.expectSteps(c, 1)
	f.toolchain.EXPECT().BundleJS(gomock.Any(), f.dir(c), domain.BentoName(c.Name), gomock.Any()).Return(err)
}

func TestBuildAll_Selection(t *testing.T) {
	f := newAggregateFixture(t)
	reg := domain.NewRegistry()

	f.tracer.EXPECT().EmitPlan(gomock.Any(), []string{"amp-bind", "amp-fit-text"})
	f.expectFullBuild(component("amp-fit-text", false), nil)
	f.expectFullBuild(component("amp-bind", false), nil)
	f.reporter.EXPECT().EndBuildStep("Compiled all", "components", gomock.Any())

	flags := domain.SelectionFlags{Extensions: "amp-fit-text,amp-bind"}
	require.NoError(t, f.agg.BuildAll(t.Context(), reg, manifest(), flags, domain.BuildOptions{}))
	assert.Equal(t, 3, reg.Len())
}

func TestBuildAll_CSSOnlyBuildsEveryComponent(t *testing.T) {
	f := newAggregateFixture(t)
	reg := domain.NewRegistry()
	accordion := component("amp-accordion", true)

	f.tracer.EXPECT().EmitPlan(gomock.Any(), []string{"amp-accordion", "amp-bind", "amp-fit-text"})
	f.toolchain.EXPECT().CompileCSS(gomock.Any(), f.dir(accordion), "amp-accordion", "1.0", gomock.Any()).Return(nil)

	// The selection names nothing with CSS, yet the CSS of every component is compiled.
	flags := domain.SelectionFlags{Extensions: "amp-bind"}
	require.NoError(t, f.agg.BuildAll(t.Context(), reg, manifest(), flags, domain.BuildOptions{CompileOnlyCSS: true}))
}

func TestBuildAll_CollectsEveryFailure(t *testing.T) {
	f := newAggregateFixture(t)
	bundleErr := errors.New("esbuild failed")

	f.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any())
	f.expectFullBuild(component("amp-accordion", true), nil)
	f.expectFullBuild(component("amp-bind", false), bundleErr)
	f.expectFullBuild(component("amp-fit-text", false), bundleErr)

	err := f.agg.BuildAll(t.Context(), domain.NewRegistry(), manifest(), domain.SelectionFlags{}, domain.BuildOptions{Minify: true})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrComponentBuildFailed)
	assert.ErrorContains(t, err, "esbuild failed")

	var failures domain.BuildFailures
	require.ErrorAs(t, err, &failures)
	assert.Equal(t, []string{"amp-bind", "amp-fit-text"}, failures.Components())
}

func TestBuildAll_ContinueOnError(t *testing.T) {
	f := newAggregateFixture(t)

	f.tracer.EXPECT().EmitPlan(gomock.Any(), []string{"amp-bind"})
	f.expectFullBuild(component("amp-bind", false), errors.New("esbuild failed"))
	f.logger.EXPECT().Error(gomock.Any())
	f.reporter.EXPECT().EndBuildStep("Minified all", "components", gomock.Any())

	flags := domain.SelectionFlags{Extensions: "amp-bind"}
	opts := domain.BuildOptions{Minify: true, ContinueOnError: true}
	require.NoError(t, f.agg.BuildAll(t.Context(), domain.NewRegistry(), manifest(), flags, opts))
}

func TestBuildAll_EmptySelectionReportsNothing(t *testing.T) {
	f := newAggregateFixture(t)

	f.tracer.EXPECT().EmitPlan(gomock.Any(), []string{})

	flags := domain.SelectionFlags{NoComponents: true}
	require.NoError(t, f.agg.BuildAll(t.Context(), domain.NewRegistry(), manifest(), flags, domain.BuildOptions{}))
}

func TestBuildAll_ConfigurationErrors(t *testing.T) {
	t.Run("missing list", func(t *testing.T) {
		f := newAggregateFixture(t)
		flags := domain.SelectionFlags{ExtensionsBare: true}
		err := f.agg.BuildAll(t.Context(), domain.NewRegistry(), manifest(), flags, domain.BuildOptions{})
		require.ErrorIs(t, err, domain.ErrMissingComponentList)
	})

	t.Run("invalid manifest", func(t *testing.T) {
		f := newAggregateFixture(t)
		reg := domain.NewRegistry()
		err := f.agg.BuildAll(t.Context(), reg, func() (*domain.Manifest, error) {
			return &domain.Manifest{}, nil
		}, domain.SelectionFlags{}, domain.BuildOptions{})
		require.ErrorIs(t, err, domain.ErrManifestInvalid)
		assert.Equal(t, 0, reg.Len())
	})
}
