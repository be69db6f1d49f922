package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain store Graft node.
const NodeID graft.ID = "adapter.toolchain_store"

func init() {
	graft.Register(graft.Node[ports.ToolchainStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolchainStore, error) {
			return NewStore(domain.DefaultCachePath()), nil
		},
	})
}
