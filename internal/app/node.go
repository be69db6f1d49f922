package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/adapters/backend"   //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/buildfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/discovery" //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/focal/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			buildfile.NodeID,
			cache.NodeID,
			scheduler.NodeID,
			toolchain.ResolverNodeID,
			toolchain.FinderNodeID,
			backend.CompilerNodeID,
			backend.SweeperNodeID,
			linear.ReporterNodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var deps Deps
	var err error

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Discoverer, err = graft.Dep[ports.ProjectDiscoverer](ctx); err != nil {
		return nil, err
	}
	if deps.Extractor, err = graft.Dep[ports.DependencyExtractor](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.ToolchainStore](ctx); err != nil {
		return nil, err
	}
	if deps.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if deps.Resolver, err = graft.Dep[ports.ToolchainResolver](ctx); err != nil {
		return nil, err
	}
	if deps.Finder, err = graft.Dep[ports.ToolFinder](ctx); err != nil {
		return nil, err
	}
	if deps.Compiler, err = graft.Dep[ports.SourceCompiler](ctx); err != nil {
		return nil, err
	}
	if deps.Cleaner, err = graft.Dep[ports.ArtifactCleaner](ctx); err != nil {
		return nil, err
	}
	if deps.Reporter, err = graft.Dep[ports.Reporter](ctx); err != nil {
		return nil, err
	}
	if deps.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}
