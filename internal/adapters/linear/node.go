package linear

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/focal/internal/core/ports"
)

// ReporterNodeID provides the stdout reporter.
const ReporterNodeID graft.ID = "adapter.reporter"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(nil), nil
		},
	})
}
