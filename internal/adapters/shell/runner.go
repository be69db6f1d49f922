// Package shell runs external commands on a pseudo-terminal.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/creack/pty"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner.
// Commands run on a PTY so build tools keep their colored, line-buffered
// output. Where PTYs are unsupported, stdout and stderr are piped instead.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes c, copies its combined output to out and returns its exit code.
// A non-zero exit is not an error; only a failure to spawn is.
func (r *Runner) Run(ctx context.Context, c domain.Command, out io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // commands are built by the backend
	cmd.Dir = c.Dir

	wait, err := start(cmd, out)
	if err != nil {
		return -1, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", c.String())
	}

	return exitCode(wait())
}

// start launches cmd and returns a function that waits for both the process
// and the output copy to finish.
func start(cmd *exec.Cmd, out io.Writer) (func() error, error) {
	ptmx, err := pty.Start(cmd)
	if errors.Is(err, pty.ErrUnsupported) {
		cmd.Stdout = out
		cmd.Stderr = out
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return cmd.Wait, nil
	}
	if err != nil {
		return nil, err
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		_, _ = io.Copy(out, ptmx)
	}()

	return func() error {
		err := cmd.Wait()
		<-ioDone
		return err
	}, nil
}

func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
}
