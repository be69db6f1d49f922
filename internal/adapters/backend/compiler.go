package backend

import (
	"context"
	"io"
	"runtime"
	"time"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
)

var _ ports.SourceCompiler = (*Compiler)(nil)

// Compiler implements ports.SourceCompiler with g++.
type Compiler struct {
	runner ports.CommandRunner
	goos   string
}

// NewCompiler creates a new Compiler targeting the running platform.
func NewCompiler(runner ports.CommandRunner) *Compiler {
	return &Compiler{runner: runner, goos: runtime.GOOS}
}

// Compile builds src into an executable next to it.
func (c *Compiler) Compile(
	ctx context.Context,
	src domain.SourceFile,
	profile domain.Profile,
	out io.Writer,
) (domain.InvocationResult, error) {
	start := time.Now()
	status, err := c.runner.Run(ctx, CompileCommand(src, profile, c.goos), out)
	return domain.InvocationResult{ExitStatus: status, Elapsed: time.Since(start)}, err
}

// CompileCommand returns the g++ invocation for src on goos.
func CompileCommand(src domain.SourceFile, profile domain.Profile, goos string) domain.Command {
	args := []string{src.Path, "-o", src.Output(goos)}
	if profile == domain.ProfileDebug {
		args = append(args, "-g", "-O0")
	} else {
		args = append(args, "-O2")
	}
	return domain.Command{Name: "g++", Args: args}
}
