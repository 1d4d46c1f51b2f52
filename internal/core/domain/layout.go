package domain

import (
	"path/filepath"
	"time"
)

const (
	// ManifestFileName is the default name of the component manifest.
	ManifestFileName = "bento.bundles.yaml"

	// SettingsFileName is the default name of the settings file, without extension.
	SettingsFileName = "bento"

	// DefaultComponentsRoot is where component sources live.
	DefaultComponentsRoot = "src/bento/components"

	// DefaultBuildDir receives intermediate compiler output.
	DefaultBuildDir = "build"

	// DefaultDistDir receives standalone bundles and binaries.
	DefaultDistDir = "dist/v0"

	// CSSDirName is the CSS output subdirectory of the build directory.
	CSSDirName = "css"

	// ParsersDirName is the grammar output subdirectory of the build directory.
	ParsersDirName = "parsers"

	// PackageDistDirName is the per-component directory for packaged targets.
	PackageDistDirName = "dist"

	// DefaultDebounce is the quiet period that collapses bursts of file events.
	DefaultDebounce = time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout describes where sources are read from and outputs written to.
type Layout struct {
	ComponentsRoot string
	BuildDir       string
	DistDir        string
}

// DefaultLayout returns the conventional layout rooted at the working directory.
func DefaultLayout() Layout {
	return Layout{
		ComponentsRoot: DefaultComponentsRoot,
		BuildDir:       DefaultBuildDir,
		DistDir:        DefaultDistDir,
	}
}

// ComponentDir returns <components-root>/<name>/<version>.
func (l Layout) ComponentDir(name, version string) string {
	return filepath.Join(l.ComponentsRoot, name, version)
}

// CSSDir returns the directory receiving compiled stylesheets.
func (l Layout) CSSDir() string {
	return filepath.Join(l.BuildDir, CSSDirName)
}

// CSSOutput returns the compiled stylesheet path of a component.
func (l Layout) CSSOutput(name, version string) string {
	return filepath.Join(l.CSSDir(), name+"-"+version+".css")
}

// CSSModule returns the path of the JS module that wraps a component's stylesheet.
func (l Layout) CSSModule(name, version string) string {
	return filepath.Join(l.BuildDir, name+"-"+version+".css.js")
}

// ParserOutput returns the path of the JS parser generated from a grammar file.
func (l Layout) ParserOutput(grammarFile string) string {
	base := filepath.Base(grammarFile)
	return filepath.Join(l.BuildDir, ParsersDirName, base[:len(base)-len(filepath.Ext(base))]+".js")
}

// PackageDir returns the dist directory inside a component directory.
func (l Layout) PackageDir(componentDir string) string {
	return filepath.Join(componentDir, PackageDistDirName)
}
