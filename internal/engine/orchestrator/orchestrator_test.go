package orchestrator_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/telemetry"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/core/ports/mocks"
	"go.trai.ch/bento/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

func TestBuildComponent_CSSOnlyWithoutCSS(t *testing.T) {
	f := newFixture(t)

	// No expectations: any collaborator call fails the test.
	err := f.orch.BuildComponent(t.Context(), component("amp-fit-text", false), domain.BuildOptions{CompileOnlyCSS: true})
	require.NoError(t, err)
	assert.NoDirExists(t, f.layout.CSSDir())
}

func TestBuildComponent_CSSOnly(t *testing.T) {
	f := newFixture(t)
	c := component("amp-accordion", true)

	f.toolchain.EXPECT().CompileCSS(gomock.Any(), f.dir(c), "amp-accordion", "1.0", gomock.Any()).Return(nil)

	require.NoError(t, f.orch.BuildComponent(t.Context(), c, domain.BuildOptions{CompileOnlyCSS: true}))
	assert.DirExists(t, f.layout.CSSDir())
}

func TestBuildComponent_FullBuild(t *testing.T) {
	f := newFixture(t)
	c := component("amp-accordion", true)
	c.ExtraGlobs = []string{"src/bento/components/amp-base/**/*.js"}
	opts := domain.BuildOptions{}.WithComponent(c)

	f.expectSteps(c, 1)
	f.toolchain.EXPECT().
		BundleJS(gomock.Any(), f.dir(c), "bento-accordion", ports.BundleOptions{
			Filename: "bento-accordion-1.0.max.js",
			Wrapper:  "none",
			ExtraGlobs: []string{
				"src/bento/components/amp-base/**/*.js",
				filepath.ToSlash(filepath.Join(f.dir(c), "**", "*.js")),
			},
		}).
		Return(nil)

	require.NoError(t, f.orch.BuildComponent(t.Context(), c, opts))
	assert.Len(t, c.ExtraGlobs, 1)
}

func TestBuildComponent_Minified(t *testing.T) {
	f := newFixture(t)
	c := component("amp-fit-text", false)

	f.expectSteps(c, 1)
	f.toolchain.EXPECT().
		BundleJS(gomock.Any(), f.dir(c), "bento-fit-text", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, opts ports.BundleOptions) error {
			assert.Equal(t, "bento-fit-text-1.0.js", opts.Filename)
			assert.True(t, opts.Minify)
			return nil
		})

	require.NoError(t, f.orch.BuildComponent(t.Context(), c, domain.BuildOptions{Minify: true}))
}

func TestBuildComponent_RebuildSkipsBundle(t *testing.T) {
	f := newFixture(t)
	c := component("amp-accordion", true)
	c.Options.Binaries = []domain.Binary{{EntryPoint: "a.js", Outfile: "a-1.0.js"}}
	opts := domain.BuildOptions{}.WithComponent(c).ForRebuild()

	f.expectSteps(c, 1)
	f.toolchain.EXPECT().BuildBinaries(gomock.Any(), f.dir(c), c.Options.Binaries, gomock.Any()).Return(nil)
	f.toolchain.EXPECT().BundleJS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.orch.BuildComponent(t.Context(), c, opts))
}

func TestBuildComponent_StepFailure(t *testing.T) {
	f := newFixture(t)
	c := component("amp-bind", false)
	compileErr := errors.New("jison exited with 1")

	f.toolchain.EXPECT().CompileGrammar(gomock.Any(), gomock.Any(), gomock.Any()).Return(compileErr)
	f.toolchain.EXPECT().BuildNpmBinaries(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.toolchain.EXPECT().BuildNpmCSS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.toolchain.EXPECT().BundleJS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	err := f.orch.BuildComponent(t.Context(), c, domain.BuildOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStepFailed.Error())
	assert.ErrorContains(t, err, "jison exited with 1")
}

func TestBuildComponent_ObservesMetrics(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	observed := mocks.NewMockBuildMetrics(ctrl)
	orch := orchestrator.New(f.toolchain, telemetry.NewNoOpTracer(), observed, f.logger, nil, f.layout)
	c := component("amp-accordion", true)
	cssErr := errors.New("postcss failed")

	f.toolchain.EXPECT().CompileCSS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cssErr)
	gomock.InOrder(
		observed.EXPECT().ObserveStep("amp-accordion", orchestrator.StepCSS, gomock.Any(), gomock.Not(gomock.Nil())),
		observed.EXPECT().ObserveComponent("amp-accordion", false, gomock.Not(gomock.Nil())),
	)

	require.Error(t, orch.BuildComponent(t.Context(), c, domain.BuildOptions{CompileOnlyCSS: true}))
}

func TestWatchRoots(t *testing.T) {
	roots := orchestrator.WatchRoots([]string{
		"src/bento/components/amp-a/1.0/**/*.css",
		"src/bento/components/amp-a/1.0/**/*.jison",
		"src/bento/components/amp-base-carousel/1.0/*.js",
		"*.js",
	})
	assert.Equal(t, []string{
		filepath.FromSlash("src/bento/components/amp-a/1.0"),
		filepath.FromSlash("src/bento/components/amp-base-carousel/1.0"),
		".",
	}, roots)
}
