package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bento/internal/core/ports"
)

const (
	// ManifestNodeID is the unique identifier for the manifest loader Graft node.
	ManifestNodeID graft.ID = "adapter.manifest_loader"
	// SettingsNodeID is the unique identifier for the settings loader Graft node.
	SettingsNodeID graft.ID = "adapter.settings_loader"
	// ListNodeID is the unique identifier for the component list reader Graft node.
	ListNodeID graft.ID = "adapter.component_list"
)

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return NewManifestLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ComponentListReader]{
		ID:        ListNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ComponentListReader, error) {
			return NewListReader(), nil
		},
	})
}
