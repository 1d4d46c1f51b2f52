package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/core/domain"
)

func TestBentoName(t *testing.T) {
	assert.Equal(t, "bento-accordion", domain.BentoName("amp-accordion"))
	assert.Equal(t, "bento-accordion", domain.BentoName("bento-accordion"))
	assert.Equal(t, "bento-sidebar", domain.BentoName("sidebar"))
}

func TestBuildFilename(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		minify bool
		want   string
	}{
		{name: "minified standalone", mode: domain.ModeStandalone, minify: true, want: "bento-accordion-1.0.js"},
		{name: "unminified standalone", mode: domain.ModeStandalone, want: "bento-accordion-1.0.max.js"},
		{name: "other mode", mode: "esm", minify: true, want: "bento-accordion-1.0.esm.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.BuildFilename("bento-accordion", "1.0", tt.mode, tt.minify))
		})
	}
}

func TestBuildOptions_WithComponent(t *testing.T) {
	c := domain.Component{
		Name:    "amp-date-display",
		Version: "1.0",
		Options: domain.ComponentOptions{
			Binaries: []domain.Binary{{EntryPoint: "a.js", Outfile: "a.js"}},
			NpmCSS:   []string{"date-display.css"},
		},
		ExtraGlobs: []string{"extra/**/*.js"},
	}
	global := domain.BuildOptions{Minify: true, Watch: true}

	opts := global.WithComponent(c)
	assert.True(t, opts.Minify)
	assert.True(t, opts.Watch)
	assert.Equal(t, c.Options.Binaries, opts.Binaries)
	assert.Equal(t, c.Options.NpmCSS, opts.NpmCSS)
	assert.Equal(t, c.ExtraGlobs, opts.ExtraGlobs)

	// The shared options value stays untouched.
	assert.Empty(t, global.Binaries)

	opts.ExtraGlobs[0] = "changed"
	assert.Equal(t, "extra/**/*.js", c.ExtraGlobs[0])
}

func TestBuildOptions_ForRebuild(t *testing.T) {
	opts := domain.BuildOptions{Watch: true, Minify: true}.ForRebuild()
	assert.True(t, opts.IsRebuild)
	assert.True(t, opts.ContinueOnError)
	assert.False(t, opts.Watch)
	assert.True(t, opts.Minify)
}

func TestBuildOptions_BuildLabel(t *testing.T) {
	assert.Equal(t, "Compiled all", domain.BuildOptions{}.BuildLabel())
	assert.Equal(t, "Minified all", domain.BuildOptions{Minify: true}.BuildLabel())
}

func TestBuildFailures(t *testing.T) {
	errA := errors.New("css failed")
	errB := errors.New("bundle failed")
	failures := domain.BuildFailures{
		{Component: "amp-a", Err: errA},
		{Component: "amp-b", Err: errB},
	}

	assert.ErrorIs(t, failures, errA)
	assert.ErrorIs(t, failures, errB)
	assert.Equal(t, []string{"amp-a", "amp-b"}, failures.Components())
	assert.Contains(t, failures.Error(), "2 components failed")
	assert.Contains(t, failures.Error(), "amp-b: bundle failed")

	single := domain.BuildFailures{{Component: "amp-a", Err: errA}}
	assert.Equal(t, "amp-a: css failed", single.Error())
}

func TestLayout(t *testing.T) {
	l := domain.DefaultLayout()

	assert.Equal(t, filepath.Join("src", "bento", "components", "amp-accordion", "1.0"), l.ComponentDir("amp-accordion", "1.0"))
	assert.Equal(t, filepath.Join("build", "css", "amp-accordion-1.0.css"), l.CSSOutput("amp-accordion", "1.0"))
	assert.Equal(t, filepath.Join("build", "amp-accordion-1.0.css.js"), l.CSSModule("amp-accordion", "1.0"))
	assert.Equal(t, filepath.Join("build", "parsers", "bind-expr-impl.js"), l.ParserOutput("x/y/bind-expr-impl.jison"))
	assert.Equal(t, filepath.Join("x", "dist"), l.PackageDir("x"))
}

func TestSettings_Layout(t *testing.T) {
	s := &domain.Settings{ComponentsRoot: "c", BuildDir: "b", DistDir: "d"}
	require.Equal(t, domain.Layout{ComponentsRoot: "c", BuildDir: "b", DistDir: "d"}, s.Layout())
}
