package ports

import (
	"context"

	"go.trai.ch/focal/internal/core/domain"
)

//go:generate mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks

// ProjectDiscoverer finds build units below a scan root.
type ProjectDiscoverer interface {
	// Discover returns every project root below root, deduplicated by path
	// and ordered root-first. Unreadable subtrees are skipped.
	Discover(ctx context.Context, root string, opts domain.ScanOptions) ([]*domain.Project, error)

	// Sources returns the standalone source files below root.
	Sources(ctx context.Context, root string, opts domain.ScanOptions) ([]domain.SourceFile, error)

	// FindSource locates a source file by basename anywhere below root.
	FindSource(ctx context.Context, root, name string) (domain.SourceFile, error)
}

// DependencyExtractor derives inter-project edges from build files.
type DependencyExtractor interface {
	// Extract returns the dependency graph of projects. It is best-effort
	// and never fails.
	Extract(projects []*domain.Project) *domain.DependencyGraph
}

// ArtifactCleaner removes build output directories.
type ArtifactCleaner interface {
	// Sweep removes every artifact directory below root and returns the removed paths.
	Sweep(ctx context.Context, root string) ([]string, error)
}
