package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/adapters/logger"
	"go.trai.ch/focal/internal/core/ports"
)

// NodeID is the unique identifier for the project discoverer Graft node.
const NodeID graft.ID = "adapter.project_discoverer"

func init() {
	graft.Register(graft.Node[ports.ProjectDiscoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectDiscoverer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWalker(log), nil
		},
	})
}
