package domain

import (
	"errors"
	"regexp"

	"go.trai.ch/zerr"
)

var (
	validComponentNameRegex    = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	validComponentVersionRegex = regexp.MustCompile(`^\d+\.\d+$`)
)

// ManifestEntry is one declared component in the manifest.
type ManifestEntry struct {
	Name       string           `yaml:"name" json:"name"`
	Version    string           `yaml:"version" json:"version"`
	Options    ComponentOptions `yaml:"options" json:"options"`
	ExtraGlobs []string         `yaml:"extraGlobs,omitempty" json:"extraGlobs,omitempty"`
}

// Manifest is the static declaration of every buildable component.
type Manifest struct {
	// Inabox overrides the predeclared in-a-box component set when non-empty.
	Inabox     []string        `yaml:"inabox,omitempty" json:"inabox,omitempty"`
	Components []ManifestEntry `yaml:"components" json:"components"`
}

// Validate checks every entry of the manifest and reports all problems at once.
func (m *Manifest) Validate() error {
	if len(m.Components) == 0 {
		return ErrManifestEmpty
	}

	var errs error
	seen := make(map[string]int, len(m.Components))
	for i := range m.Components {
		entry := &m.Components[i]
		if err := entry.validate(); err != nil {
			errs = errors.Join(errs, zerr.With(err, "index", i))
			continue
		}
		if first, ok := seen[entry.Name]; ok {
			err := zerr.With(ErrDuplicateComponent, "component", entry.Name)
			err = zerr.With(err, "first_index", first)
			errs = errors.Join(errs, zerr.With(err, "index", i))
			continue
		}
		seen[entry.Name] = i
	}

	if errs != nil {
		return errors.Join(ErrManifestInvalid, errs)
	}
	return nil
}

func (e *ManifestEntry) validate() error {
	if e.Name == "" {
		return ErrMissingComponentName
	}
	if !validComponentNameRegex.MatchString(e.Name) {
		return zerr.With(ErrInvalidComponentName, "component", e.Name)
	}
	if !validComponentVersionRegex.MatchString(e.Version) {
		err := zerr.With(ErrInvalidComponentVersion, "component", e.Name)
		return zerr.With(err, "version", e.Version)
	}
	for _, bins := range [][]Binary{e.Options.Binaries, e.Options.Npm} {
		for _, b := range bins {
			if b.EntryPoint == "" || b.Outfile == "" {
				return zerr.With(ErrInvalidBinary, "component", e.Name)
			}
		}
	}
	return nil
}

// Component converts the entry into its registered form.
func (e *ManifestEntry) Component() Component {
	return Component{
		Name:          e.Name,
		Version:       e.Version,
		CompatVersion: CompatVersion,
		HasCSS:        e.Options.HasCSS,
		Options:       e.Options,
		ExtraGlobs:    e.ExtraGlobs,
	}
}
