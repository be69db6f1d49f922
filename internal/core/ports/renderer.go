package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for output rendering.
// It decouples telemetry collection from presentation logic.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop flushes any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called once the execution plan is known.
	// projects: project names in execution order
	// deps: dependency map (project -> list of dependencies)
	// targets: the user-requested projects, empty for all
	OnPlanEmit(projects []string, deps map[string][]string, targets []string)

	// OnTaskStart is called when a project begins building.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskLog is called when a project's build emits output.
	// data may contain partial lines.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when a project finishes. err is nil on success.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
