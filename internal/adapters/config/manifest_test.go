package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/config"
	"go.trai.ch/bento/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestManifestLoader_Load(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bento.bundles.yaml", `
components:
  - name: amp-accordion
    version: "1.0"
    options:
      hasCss: true
      npm:
        - entryPoint: component.js
          outfile: component-preact.js
          external: [preact]
  - name: amp-date-display
    version: "1.0"
    options:
      binaries:
        - entryPoint: date-display.js
          outfile: date-display.js
    extraGlobs:
      - src/bento/components/amp-date-display/1.0/**/*.js
`)

	m, err := config.NewManifestLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, m.Components, 2)

	acc := m.Components[0]
	assert.Equal(t, "amp-accordion", acc.Name)
	assert.Equal(t, "1.0", acc.Version)
	assert.True(t, acc.Options.HasCSS)
	require.Len(t, acc.Options.Npm, 1)
	assert.Equal(t, []string{"preact"}, acc.Options.Npm[0].External)

	dd := m.Components[1]
	assert.Equal(t, []domain.Binary{{EntryPoint: "date-display.js", Outfile: "date-display.js"}}, dd.Options.Binaries)
	assert.Len(t, dd.ExtraGlobs, 1)
	require.NoError(t, m.Validate())
}

func TestManifestLoader_LoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bundles.json",
		`{"components": [{"name": "amp-fit-text", "version": "1.0", "options": {"hasCss": true}}]}`)

	m, err := config.NewManifestLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, m.Components, 1)
	assert.True(t, m.Components[0].Options.HasCSS)
}

func TestManifestLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewManifestLoader().Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "components: [\n")
		_, err := config.NewManifestLoader().Load(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
	})

	t.Run("unknown field", func(t *testing.T) {
		path := writeFile(t, dir, "typo.yaml", "components:\n  - name: amp-a\n    verison: \"1.0\"\n")
		_, err := config.NewManifestLoader().Load(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
	})

	t.Run("empty file decodes to empty manifest", func(t *testing.T) {
		path := writeFile(t, dir, "empty.yaml", "")
		m, err := config.NewManifestLoader().Load(path)
		require.NoError(t, err)
		assert.ErrorContains(t, m.Validate(), domain.ErrManifestEmpty.Error())
	})
}
