package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bento/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	CleanerNodeID  graft.ID = "adapter.fs.cleaner"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputCleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.OutputCleaner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(walker), nil
		},
	})

	// The resolver depends on settings loaded per invocation and is built by the app.
	graft.Register(graft.Node[ports.OutputVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
