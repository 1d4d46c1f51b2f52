// Package domain contains the core domain models for the component build orchestrator.
package domain

import (
	"fmt"
	"strings"
)

// CompatVersion is the compatibility tag attached to every declared component.
const CompatVersion = "0.1"

// ModeStandalone is the bundle mode of a component's self-contained output.
const ModeStandalone = "standalone"

const (
	ampPrefix   = "amp-"
	bentoPrefix = "bento-"
)

// Binary is an additional build target declared for a component.
type Binary struct {
	EntryPoint string   `yaml:"entryPoint" json:"entryPoint"`
	Outfile    string   `yaml:"outfile" json:"outfile"`
	External   []string `yaml:"external,omitempty" json:"external,omitempty"`
}

// ComponentOptions are the per-component build options declared in the manifest.
type ComponentOptions struct {
	HasCSS   bool     `yaml:"hasCss" json:"hasCss"`
	Binaries []Binary `yaml:"binaries,omitempty" json:"binaries,omitempty"`
	// Npm lists the packaged-binary targets compiled into the component's dist directory.
	Npm []Binary `yaml:"npm,omitempty" json:"npm,omitempty"`
	// NpmCSS lists the stylesheets, relative to the component directory, packaged alongside Npm.
	NpmCSS []string `yaml:"npmCss,omitempty" json:"npmCss,omitempty"`
}

// Component is a named, versioned buildable unit.
// It is immutable once registered.
type Component struct {
	Name          string
	Version       string
	CompatVersion string
	HasCSS        bool
	Options       ComponentOptions
	ExtraGlobs    []string
}

// BentoName maps a component name onto its standalone bundle name,
// e.g. "amp-accordion" becomes "bento-accordion".
func BentoName(name string) string {
	if rest, ok := strings.CutPrefix(name, ampPrefix); ok {
		return bentoPrefix + rest
	}
	if strings.HasPrefix(name, bentoPrefix) {
		return name
	}
	return bentoPrefix + name
}

// BuildFilename returns the output file name of a component bundle.
// Unminified bundles carry a ".max" infix so both flavours can coexist in one directory.
func BuildFilename(name, version, mode string, minify bool) string {
	base := fmt.Sprintf("%s-%s", name, version)
	if mode != "" && mode != ModeStandalone {
		base += "." + mode
	}
	if !minify {
		base += ".max"
	}
	return base + ".js"
}
