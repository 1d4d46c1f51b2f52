package selection_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports/mocks"
	"go.trai.ch/bento/internal/engine/selection"
	"go.uber.org/mock/gomock"
)

func newRegistry(t *testing.T, names ...string) *domain.Registry {
	t.Helper()
	entries := make([]domain.ManifestEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, domain.ManifestEntry{Name: n, Version: "1.0"})
	}
	reg := domain.NewRegistry()
	require.NoError(t, reg.EnsureInitialized(func() (*domain.Manifest, error) {
		return &domain.Manifest{Components: entries}, nil
	}))
	return reg
}

func TestFilter_Select(t *testing.T) {
	reg := newRegistry(t, "amp-accordion", "amp-base-carousel", "amp-fit-text")

	tests := []struct {
		name     string
		flags    domain.SelectionFlags
		preBuild bool
		want     []string
	}{
		{
			name: "no flags selects every component in registry order",
			want: []string{"amp-accordion", "amp-base-carousel", "amp-fit-text"},
		},
		{
			name:  "explicit list is deduplicated in first-seen order",
			flags: domain.SelectionFlags{Extensions: "b,a,b"},
			want:  []string{"b", "a"},
		},
		{
			name:  "whitespace and empty names are dropped",
			flags: domain.SelectionFlags{Extensions: " amp-fit-text , ,amp-accordion,"},
			want:  []string{"amp-fit-text", "amp-accordion"},
		},
		{
			name:  "inner whitespace is removed",
			flags: domain.SelectionFlags{Extensions: "amp-fit text,\tamp-accordion\n"},
			want:  []string{"amp-fittext", "amp-accordion"},
		},
		{
			name:  "explicitly empty list selects every component",
			flags: domain.SelectionFlags{Extensions: ""},
			want:  []string{"amp-accordion", "amp-base-carousel", "amp-fit-text"},
		},
		{
			name:  "whitespace-only list selects nothing",
			flags: domain.SelectionFlags{Extensions: "  "},
			want:  []string{},
		},
		{
			name:     "preBuild without flags selects nothing",
			preBuild: true,
			want:     []string{},
		},
		{
			name:  "nocomponents selects nothing",
			flags: domain.SelectionFlags{NoComponents: true},
			want:  []string{},
		},
		{
			name:  "core runtime only selects nothing",
			flags: domain.SelectionFlags{CoreRuntimeOnly: true},
			want:  []string{},
		},
		{
			name:  "core runtime only keeps explicit names",
			flags: domain.SelectionFlags{Extensions: "amp-fit-text", CoreRuntimeOnly: true},
			want:  []string{"amp-fit-text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := selection.NewFilter(mocks.NewMockComponentListReader(ctrl))

			got, err := f.Select(reg, tt.flags, tt.preBuild)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Select_Inabox(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := selection.NewFilter(mocks.NewMockComponentListReader(ctrl))

	got, err := f.Select(newRegistry(t, "amp-accordion"), domain.SelectionFlags{Extensions: "inabox"}, false)
	require.NoError(t, err)
	assert.Equal(t, domain.InaboxComponents, got)
}

func TestFilter_Select_InaboxMergedWithList(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockComponentListReader(ctrl)
	reader.EXPECT().ReadComponentList("list.txt").Return([]string{"amp-bind", "amp-custom"}, nil)

	reg := domain.NewRegistry()
	require.NoError(t, reg.EnsureInitialized(func() (*domain.Manifest, error) {
		return &domain.Manifest{
			Components: []domain.ManifestEntry{{Name: "amp-bind", Version: "1.0"}},
			Inabox:     []string{"amp-fit-text", "amp-bind"},
		}, nil
	}))

	got, err := selection.NewFilter(reader).Select(reg, domain.SelectionFlags{
		Extensions:     "inabox",
		ExtensionsFrom: "list.txt",
	}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"amp-fit-text", "amp-bind", "amp-custom"}, got)
}

func TestFilter_Select_ExtensionsFrom(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockComponentListReader(ctrl)
	reader.EXPECT().ReadComponentList("list.txt").Return([]string{"amp-fit-text", "amp-accordion", "amp-fit-text"}, nil)

	got, err := selection.NewFilter(reader).Select(
		newRegistry(t, "amp-accordion", "amp-fit-text"),
		domain.SelectionFlags{Extensions: "amp-accordion", ExtensionsFrom: "list.txt"},
		false,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"amp-accordion", "amp-fit-text"}, got)
}

func TestFilter_Select_MissingList(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := selection.NewFilter(mocks.NewMockComponentListReader(ctrl))

	_, err := f.Select(newRegistry(t, "amp-a"), domain.SelectionFlags{ExtensionsBare: true}, false)
	require.ErrorIs(t, err, domain.ErrMissingComponentList)
}

func TestFilter_Select_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockComponentListReader(ctrl)
	reader.EXPECT().ReadComponentList("missing.txt").Return(nil, errors.New("no such file"))

	_, err := selection.NewFilter(reader).Select(newRegistry(t, "amp-a"), domain.SelectionFlags{ExtensionsFrom: "missing.txt"}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no such file")
}
