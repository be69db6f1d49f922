// Package backend drives the native build tools of each project kind.
package backend

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildBackend = (*Backend)(nil)

// makefileVariants are tried in order before the default Makefile.
var makefileVariants = []string{"Makefile.all", "Makefile.release"}

// Backend implements ports.BuildBackend on top of a CommandRunner.
type Backend struct {
	runner ports.CommandRunner
}

// NewBackend creates a new Backend.
func NewBackend(runner ports.CommandRunner) *Backend {
	return &Backend{runner: runner}
}

// Invoke performs one phase of a project build and reports its exit status.
func (b *Backend) Invoke(ctx context.Context, inv domain.Invocation, out io.Writer) (domain.InvocationResult, error) {
	start := time.Now()

	var (
		status int
		err    error
	)
	switch inv.Kind {
	case domain.KindCMake:
		status, err = b.cmake(ctx, inv, out)
	case domain.KindMakefile:
		status, err = b.makefile(ctx, inv, out)
	case domain.KindCargo:
		status, err = b.cargo(ctx, inv, out)
	default:
		return domain.InvocationResult{}, zerr.With(domain.ErrUnsupportedKind, "kind", inv.Kind.String())
	}

	return domain.InvocationResult{ExitStatus: status, Elapsed: time.Since(start)}, err
}

func (b *Backend) cmake(ctx context.Context, inv domain.Invocation, out io.Writer) (int, error) {
	buildDir := domain.ProjectBuildDir(inv.Path)

	switch inv.Operation {
	case domain.OpConfigure:
		if err := os.MkdirAll(buildDir, domain.DirPerm); err != nil {
			return -1, zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", buildDir)
		}
		return b.runner.Run(ctx, domain.Command{
			Name: "cmake",
			Args: []string{"-S", inv.Path, "-B", buildDir, "-G", inv.Tool},
			Dir:  inv.Path,
		}, out)
	case domain.OpBuild:
		return b.runner.Run(ctx, domain.Command{
			Name: "cmake",
			Args: []string{"--build", buildDir, "--config", string(inv.Profile)},
			Dir:  inv.Path,
		}, out)
	default:
		removed, failed := removeArtifacts(inv.Path, domain.ArtifactDirNames, out)
		if removed == 0 && !failed {
			_, _ = fmt.Fprintln(out, "No build directories to clean")
		}
		if failed {
			return 1, nil
		}
		return 0, nil
	}
}

func (b *Backend) makefile(ctx context.Context, inv domain.Invocation, out io.Writer) (int, error) {
	outputDirs := []string{domain.ReleaseDirName, domain.DebugDirName}

	switch inv.Operation {
	case domain.OpConfigure:
		return 0, nil
	case domain.OpBuild:
		for _, name := range outputDirs {
			dir := filepath.Join(inv.Path, name)
			if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
				return -1, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
			}
		}

		for _, variant := range makefileVariants {
			if !isFile(filepath.Join(inv.Path, variant)) {
				continue
			}
			status, err := b.runner.Run(ctx, domain.Command{Name: "make", Args: []string{"-f", variant}, Dir: inv.Path}, out)
			if err != nil {
				return status, err
			}
			if status == 0 {
				return 0, nil
			}
		}
		return b.runner.Run(ctx, domain.Command{Name: "make", Dir: inv.Path}, out)
	default:
		status, err := b.runner.Run(ctx, domain.Command{Name: "make", Args: []string{"clean"}, Dir: inv.Path}, out)
		if err != nil {
			return status, err
		}
		removed, failed := removeArtifacts(inv.Path, outputDirs, out)
		if failed || (status != 0 && removed == 0) {
			return max(status, 1), nil
		}
		return 0, nil
	}
}

func (b *Backend) cargo(ctx context.Context, inv domain.Invocation, out io.Writer) (int, error) {
	switch inv.Operation {
	case domain.OpConfigure:
		return 0, nil
	case domain.OpBuild:
		args := []string{"build"}
		if inv.Profile == domain.ProfileRelease {
			args = append(args, "--release")
		}
		return b.runner.Run(ctx, domain.Command{Name: "cargo", Args: args, Dir: inv.Path}, out)
	default:
		return b.runner.Run(ctx, domain.Command{Name: "cargo", Args: []string{"clean"}, Dir: inv.Path}, out)
	}
}

// removeArtifacts deletes the named directories below projectPath and
// reports each removal to out.
func removeArtifacts(projectPath string, names []string, out io.Writer) (removed int, failed bool) {
	for _, name := range names {
		dir := filepath.Join(projectPath, name)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			_, _ = fmt.Fprintf(out, "Error cleaning %s: %v\n", dir, err)
			failed = true
			continue
		}
		_, _ = fmt.Fprintf(out, "Cleaned: %s\n", dir)
		removed++
	}
	return removed, failed
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
