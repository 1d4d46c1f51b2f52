package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/core/domain"
)

func TestManifest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		entries     []domain.ManifestEntry
		errContains []string
	}{
		{
			name: "valid",
			entries: []domain.ManifestEntry{
				{Name: "amp-accordion", Version: "1.0"},
				{Name: "amp-date-display", Version: "1.0", Options: domain.ComponentOptions{
					Binaries: []domain.Binary{{EntryPoint: "date-display.js", Outfile: "date-display.js"}},
				}},
			},
		},
		{
			name:        "empty",
			entries:     nil,
			errContains: []string{domain.ErrManifestEmpty.Error()},
		},
		{
			name:        "missing name",
			entries:     []domain.ManifestEntry{{Version: "1.0"}},
			errContains: []string{domain.ErrMissingComponentName.Error()},
		},
		{
			name:        "invalid name",
			entries:     []domain.ManifestEntry{{Name: "Amp_Accordion", Version: "1.0"}},
			errContains: []string{domain.ErrInvalidComponentName.Error()},
		},
		{
			name:        "invalid version",
			entries:     []domain.ManifestEntry{{Name: "amp-accordion", Version: "latest"}},
			errContains: []string{domain.ErrInvalidComponentVersion.Error()},
		},
		{
			name: "incomplete npm binary",
			entries: []domain.ManifestEntry{{Name: "amp-accordion", Version: "1.0", Options: domain.ComponentOptions{
				Npm: []domain.Binary{{EntryPoint: "component.js"}},
			}}},
			errContains: []string{domain.ErrInvalidBinary.Error()},
		},
		{
			name: "reports every problem",
			entries: []domain.ManifestEntry{
				{Name: "amp-accordion", Version: "1.0"},
				{Name: "amp-accordion", Version: "1.0"},
				{Name: "amp-sidebar", Version: "x"},
			},
			errContains: []string{
				domain.ErrDuplicateComponent.Error(),
				domain.ErrInvalidComponentVersion.Error(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.Manifest{Components: tt.entries}
			err := m.Validate()
			if len(tt.errContains) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.errContains {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestManifestEntry_Component(t *testing.T) {
	entry := domain.ManifestEntry{
		Name:       "amp-stream-gallery",
		Version:    "1.0",
		Options:    domain.ComponentOptions{HasCSS: true, NpmCSS: []string{"stream-gallery.css"}},
		ExtraGlobs: []string{"src/bento/components/amp-base-carousel/1.0/**/*.js"},
	}

	c := entry.Component()
	assert.Equal(t, "amp-stream-gallery", c.Name)
	assert.Equal(t, domain.CompatVersion, c.CompatVersion)
	assert.True(t, c.HasCSS)
	assert.Equal(t, entry.ExtraGlobs, c.ExtraGlobs)
	assert.Equal(t, []string{"stream-gallery.css"}, c.Options.NpmCSS)
}
