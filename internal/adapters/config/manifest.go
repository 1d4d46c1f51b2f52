// Package config loads the component manifest, the process settings and component lists.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestLoader = (*ManifestLoader)(nil)

// ManifestLoader reads the component manifest from a YAML (or JSON) file.
type ManifestLoader struct{}

// NewManifestLoader creates a new ManifestLoader.
func NewManifestLoader() *ManifestLoader {
	return &ManifestLoader{}
}

// Load reads and decodes the manifest at path. Unknown fields are rejected.
func (l *ManifestLoader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		err = zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var manifest domain.Manifest
	if err := dec.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		err = zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
		return nil, zerr.With(err, "path", path)
	}
	return &manifest, nil
}
