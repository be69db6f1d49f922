// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/focal/internal/core/domain"
)

//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

// BuildBackend drives the external build tool of a project.
type BuildBackend interface {
	// Invoke performs one operation on a project and reports its exit status.
	//
	// A non-zero exit status is not an error. An error is only returned when
	// the backend could not run the tool at all, for example because it is
	// missing or the project kind is unsupported.
	Invoke(ctx context.Context, inv domain.Invocation, out io.Writer) (domain.InvocationResult, error)
}

// SourceCompiler compiles a standalone source file into an executable.
type SourceCompiler interface {
	// Compile builds src next to itself with the flags of the given profile.
	Compile(
		ctx context.Context,
		src domain.SourceFile,
		profile domain.Profile,
		out io.Writer,
	) (domain.InvocationResult, error)
}
