package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/adapters/backend"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/focal/internal/adapters/toolchain" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/focal/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			backend.NodeID,
			toolchain.ResolverNodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			b, err := graft.Dep[ports.BuildBackend](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ToolchainResolver](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(b, resolver), nil
		},
	})
}
