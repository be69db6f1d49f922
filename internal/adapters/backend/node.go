package backend

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/adapters/logger"
	"go.trai.ch/focal/internal/adapters/shell"
	"go.trai.ch/focal/internal/core/ports"
)

const (
	// NodeID provides the project build backend.
	NodeID graft.ID = "adapter.build_backend"
	// CompilerNodeID provides the standalone source compiler.
	CompilerNodeID graft.ID = "adapter.source_compiler"
	// SweeperNodeID provides the clean-all artifact sweeper.
	SweeperNodeID graft.ID = "adapter.artifact_cleaner"
)

func init() {
	graft.Register(graft.Node[ports.BuildBackend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BuildBackend, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackend(runner), nil
		},
	})

	graft.Register(graft.Node[ports.SourceCompiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SourceCompiler, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(runner), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactCleaner]{
		ID:        SweeperNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactCleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSweeper(log), nil
		},
	})
}
