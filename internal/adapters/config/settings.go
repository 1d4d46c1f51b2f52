package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding settings, e.g. BENTO_BUILDDIR.
const EnvPrefix = "BENTO"

// Default toolchain commands. Arguments are text/template strings.
var (
	DefaultGrammarCommand = []string{"npx", "jison", "{{.Input}}", "-o", "{{.Output}}", "-m", "js"}
	DefaultBundleCommand  = []string{
		"npx", "esbuild", "{{.Input}}", "--bundle", "--outfile={{.Output}}",
		"--format=iife", `{{if .Minify}}--minify{{end}}`,
	}
	DefaultExternalArg = "--external:{{.}}"
)

var _ ports.SettingsLoader = (*SettingsLoader)(nil)

// SettingsLoader resolves settings from defaults, an optional settings file and BENTO_* variables.
type SettingsLoader struct {
	searchPaths []string
}

// NewSettingsLoader creates a SettingsLoader that searches the given directories for the settings file.
// With no directories it searches the working directory.
func NewSettingsLoader(searchPaths ...string) *SettingsLoader {
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	return &SettingsLoader{searchPaths: searchPaths}
}

// Load resolves the settings. A non-empty path must name an existing settings file.
func (l *SettingsLoader) Load(path string) (*domain.Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(domain.SettingsFileName)
		for _, p := range l.searchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			err = zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
			return nil, zerr.With(err, "path", path)
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	if settings.Debounce <= 0 {
		settings.Debounce = domain.DefaultDebounce
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	layout := domain.DefaultLayout()
	v.SetDefault("manifest", domain.ManifestFileName)
	v.SetDefault("componentsRoot", layout.ComponentsRoot)
	v.SetDefault("buildDir", layout.BuildDir)
	v.SetDefault("distDir", layout.DistDir)
	v.SetDefault("debounce", domain.DefaultDebounce)
	v.SetDefault("jsonLogs", false)

	v.SetDefault("toolchain.css", []string{})
	v.SetDefault("toolchain.grammar", DefaultGrammarCommand)
	v.SetDefault("toolchain.bundle", DefaultBundleCommand)
	v.SetDefault("toolchain.externalArg", DefaultExternalArg)

	v.SetDefault("verify.expected", "build-system/test-configs/built-files.out")
	v.SetDefault("verify.pattern", "build/*")
	v.SetDefault("verify.prepare", [][]string{})

	v.SetDefault("resolve.root", ".")
	v.SetDefault("resolve.aliases", map[string]string{})

	v.SetDefault("serve.addr", "localhost:8080")
	v.SetDefault("serve.roots", []string{layout.DistDir, layout.BuildDir})
	v.SetDefault("serve.cacheSize", 256)
}
