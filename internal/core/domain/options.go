package domain

import "slices"

// BuildOptions merges the global build flags with one component's manifest fields.
// A value is built per invocation and not mutated once handed to the orchestrator.
type BuildOptions struct {
	Minify          bool
	Watch           bool
	CompileOnlyCSS  bool
	IsRebuild       bool
	ContinueOnError bool
	CoreRuntimeOnly bool
	NoComponents    bool

	// Fields below come from the component manifest.
	Binaries   []Binary
	Npm        []Binary
	NpmCSS     []string
	ExtraGlobs []string
}

// WithComponent returns a copy of the options carrying c's manifest fields.
func (o BuildOptions) WithComponent(c Component) BuildOptions {
	o.Binaries = slices.Clone(c.Options.Binaries)
	o.Npm = slices.Clone(c.Options.Npm)
	o.NpmCSS = slices.Clone(c.Options.NpmCSS)
	o.ExtraGlobs = slices.Clone(c.ExtraGlobs)
	return o
}

// ForRebuild returns the options used when a watched file triggers a rebuild.
func (o BuildOptions) ForRebuild() BuildOptions {
	o.ContinueOnError = true
	o.IsRebuild = true
	o.Watch = false
	return o
}

// BuildLabel is the label used when reporting the time taken by a full build.
func (o BuildOptions) BuildLabel() string {
	if o.Minify {
		return "Minified all"
	}
	return "Compiled all"
}
