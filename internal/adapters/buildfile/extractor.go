package buildfile

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
)

var _ ports.DependencyExtractor = (*Extractor)(nil)

// Extractor implements ports.DependencyExtractor by scanning CMakeLists.txt
// files for add_subdirectory calls.
type Extractor struct {
	logger ports.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(logger ports.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract records an edge from every CMake project to the basename of each
// subdirectory it includes. Other kinds contribute no edges.
func (e *Extractor) Extract(projects []*domain.Project) *domain.DependencyGraph {
	graph := domain.NewDependencyGraph()
	for _, p := range projects {
		if p.Kind != domain.KindCMake {
			continue
		}
		for _, dir := range e.subdirectories(p) {
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(p.Path, dir)
			}
			graph.AddEdge(p.Name, filepath.Base(filepath.Clean(dir)))
		}
	}
	return graph
}

func (e *Extractor) subdirectories(p *domain.Project) []string {
	f, err := os.Open(p.BuildFile())
	if err != nil {
		e.logger.Warn(fmt.Sprintf("skipping dependencies of %s: %v", p.Name, err))
		return nil
	}
	defer func() { _ = f.Close() }()

	return ScanSubdirectories(f)
}
