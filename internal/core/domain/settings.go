package domain

import "time"

// Settings is the parsed configuration of one bento process.
type Settings struct {
	Manifest       string            `mapstructure:"manifest"`
	ComponentsRoot string            `mapstructure:"componentsRoot"`
	BuildDir       string            `mapstructure:"buildDir"`
	DistDir        string            `mapstructure:"distDir"`
	Debounce       time.Duration     `mapstructure:"debounce"`
	JSONLogs       bool              `mapstructure:"jsonLogs"`
	Toolchain      ToolchainSettings `mapstructure:"toolchain"`
	Verify         VerifySettings    `mapstructure:"verify"`
	Resolve        ResolveSettings   `mapstructure:"resolve"`
	Serve          ServeSettings     `mapstructure:"serve"`
}

// ToolchainSettings holds the argv templates of the external compilers.
// Each argument is a text/template expanded with the step's inputs.
type ToolchainSettings struct {
	// CSS compiles {{.Input}} into {{.Output}}. An empty command copies the stylesheet verbatim.
	CSS []string `mapstructure:"css"`
	// Grammar compiles the grammar file {{.Input}} into the parser {{.Output}}.
	Grammar []string `mapstructure:"grammar"`
	// Bundle bundles the entry point {{.Input}} into {{.Output}}.
	Bundle []string `mapstructure:"bundle"`
	// ExternalArg is appended to Bundle once per external module, expanded with the module as {{.}}.
	ExternalArg string `mapstructure:"externalArg"`
}

// VerifySettings configures the build-output verifier.
type VerifySettings struct {
	Expected string     `mapstructure:"expected"`
	Pattern  string     `mapstructure:"pattern"`
	Prepare  [][]string `mapstructure:"prepare"`
}

// ResolveSettings configures import path resolution.
type ResolveSettings struct {
	Root    string            `mapstructure:"root"`
	Aliases map[string]string `mapstructure:"aliases"`
}

// ServeSettings configures the cache server.
type ServeSettings struct {
	Addr      string   `mapstructure:"addr"`
	Roots     []string `mapstructure:"roots"`
	CacheSize int      `mapstructure:"cacheSize"`
}

// Layout returns the source and output layout described by the settings.
func (s *Settings) Layout() Layout {
	return Layout{
		ComponentsRoot: s.ComponentsRoot,
		BuildDir:       s.BuildDir,
		DistDir:        s.DistDir,
	}
}
