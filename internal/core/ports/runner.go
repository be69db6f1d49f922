package ports

import (
	"context"
	"io"

	"go.trai.ch/focal/internal/core/domain"
)

// CommandRunner spawns external processes.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd, streams its combined output to out and returns its exit code.
	// An error is returned only when the process could not be started.
	Run(ctx context.Context, cmd domain.Command, out io.Writer) (int, error)
}
