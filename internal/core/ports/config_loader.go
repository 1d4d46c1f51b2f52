package ports

import "go.trai.ch/bento/internal/core/domain"

// ManifestLoader defines the interface for loading the component manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest at path. It does not validate the entries.
	Load(path string) (*domain.Manifest, error)
}

// SettingsLoader defines the interface for loading process settings.
type SettingsLoader interface {
	// Load resolves settings from defaults, the optional settings file at path and the environment.
	// An empty path searches the working directory for the default settings file.
	Load(path string) (*domain.Settings, error)
}

// ComponentListReader reads the component names listed in a file.
type ComponentListReader interface {
	// ReadComponentList returns the names in file order. Blank lines and comments are skipped.
	ReadComponentList(path string) ([]string, error)
}
