package toolchain

import (
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
)

// Inventory checks every known build and Visual Studio tool.
func Inventory(finder ports.ToolFinder) domain.ToolInventory {
	return domain.ToolInventory{
		Build:                 checkAll(finder, domain.BuildTools),
		VisualStudio:          checkAll(finder, domain.VisualStudioTools),
		VisualStudioInstalled: finder.VisualStudioInstalled(),
	}
}

func checkAll(finder ports.ToolFinder, specs []domain.ToolSpec) []domain.ToolStatus {
	out := make([]domain.ToolStatus, len(specs))
	for i, spec := range specs {
		out[i] = domain.ToolStatus{ToolSpec: spec, Available: finder.Available(spec.Binary)}
	}
	return out
}
