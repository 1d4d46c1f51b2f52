package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bento/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the linear renderer Graft node.
	NodeID graft.ID = "adapter.linear"
	// ReporterNodeID is the unique identifier for the build step reporter Graft node.
	ReporterNodeID graft.ID = "adapter.step_reporter"
)

func init() {
	graft.Register(graft.Node[*Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Renderer, error) {
			return NewRenderer(nil, nil), nil
		},
	})

	graft.Register(graft.Node[ports.StepReporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.StepReporter, error) {
			renderer, err := graft.Dep[*Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return renderer, nil
		},
	})
}
