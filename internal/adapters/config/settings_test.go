package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/config"
	"go.trai.ch/bento/internal/core/domain"
)

func TestSettingsLoader_Defaults(t *testing.T) {
	s, err := config.NewSettingsLoader(t.TempDir()).Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.ManifestFileName, s.Manifest)
	assert.Equal(t, domain.DefaultLayout(), s.Layout())
	assert.Equal(t, domain.DefaultDebounce, s.Debounce)
	assert.Equal(t, config.DefaultBundleCommand, s.Toolchain.Bundle)
	assert.Equal(t, config.DefaultExternalArg, s.Toolchain.ExternalArg)
	assert.Empty(t, s.Toolchain.CSS)
	assert.Equal(t, "build/*", s.Verify.Pattern)
	assert.Equal(t, 256, s.Serve.CacheSize)
}

func TestSettingsLoader_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bento.yaml", `
buildDir: out
debounce: 250ms
toolchain:
  css: ["postcss", "{{.Input}}", "-o", "{{.Output}}"]
verify:
  prepare:
    - ["amp", "clean"]
    - ["amp", "dist"]
resolve:
  aliases:
    "#core/": "src/core/"
serve:
  roots: [dist]
`)

	s, err := config.NewSettingsLoader(dir).Load("")
	require.NoError(t, err)

	assert.Equal(t, "out", s.BuildDir)
	assert.Equal(t, domain.DefaultDistDir, s.DistDir)
	assert.Equal(t, 250*time.Millisecond, s.Debounce)
	assert.Equal(t, []string{"postcss", "{{.Input}}", "-o", "{{.Output}}"}, s.Toolchain.CSS)
	assert.Equal(t, [][]string{{"amp", "clean"}, {"amp", "dist"}}, s.Verify.Prepare)
	assert.Equal(t, "src/core/", s.Resolve.Aliases["#core/"])
	assert.Equal(t, []string{"dist"}, s.Serve.Roots)
}

func TestSettingsLoader_Env(t *testing.T) {
	t.Setenv("BENTO_DISTDIR", "public")
	t.Setenv("BENTO_SERVE_ADDR", ":9000")

	s, err := config.NewSettingsLoader(t.TempDir()).Load("")
	require.NoError(t, err)
	assert.Equal(t, "public", s.DistDir)
	assert.Equal(t, ":9000", s.Serve.Addr)
}

func TestSettingsLoader_ExplicitPathMissing(t *testing.T) {
	_, err := config.NewSettingsLoader().Load("/does/not/exist/bento.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsLoadFailed.Error())
}
