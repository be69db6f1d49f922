package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/core/ports"
)

const (
	// FinderNodeID provides the PATH based tool finder.
	FinderNodeID graft.ID = "adapter.tool_finder"
	// ResolverNodeID provides the toolchain resolver.
	ResolverNodeID graft.ID = "adapter.toolchain_resolver"
)

func init() {
	graft.Register(graft.Node[ports.ToolFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolFinder, error) {
			return NewPathFinder(), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{FinderNodeID},
		Run: func(ctx context.Context) (ports.ToolchainResolver, error) {
			finder, err := graft.Dep[ports.ToolFinder](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(finder), nil
		},
	})
}
