package ports

import (
	"time"

	"go.trai.ch/focal/internal/core/domain"
)

//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

// Reporter prints the end-of-run summaries of each command.
type Reporter interface {
	// BuildSummary lists the outcome of every project of a build or clean pass.
	BuildSummary(projects []*domain.Project, op domain.Operation, elapsed time.Duration)
	// CleanAll lists the artifact directories removed by a clean-all pass.
	CleanAll(removed []string)
	// Projects lists discovered projects with their resolved tools.
	Projects(root string, projects []*domain.Project)
	// Inventory prints the availability of the known build tools.
	Inventory(inv domain.ToolInventory)
	// Sources lists the outcome of every standalone source build.
	Sources(builds []domain.SourceBuild)
}
