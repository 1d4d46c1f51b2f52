package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/config"
	"go.trai.ch/bento/internal/core/domain"
)

func TestListReader_ReadComponentList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "components.txt", `# ads
amp-accordion
amp-sidebar, amp-fit-text

  amp-lightbox  # trailing comment
`)

	names, err := config.NewListReader().ReadComponentList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"amp-accordion", "amp-sidebar", "amp-fit-text", "amp-lightbox"}, names)
}

func TestListReader_Missing(t *testing.T) {
	_, err := config.NewListReader().ReadComponentList(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrComponentListReadFailed.Error())
}
