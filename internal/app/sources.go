package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/zerr"
)

// SourceOptions configures BuildSources.
type SourceOptions struct {
	Root string
	// File is the basename of a single source to build. Empty builds every standalone source.
	File    string
	Profile string
	Verbose bool
}

// BuildSources compiles standalone sources one after another.
func (a *App) BuildSources(ctx context.Context, opts SourceOptions) error {
	cfg, err := a.resolveSettings(opts.Root, opts.Profile, 0, opts.Verbose)
	if err != nil {
		return err
	}

	var files []domain.SourceFile
	if opts.File != "" {
		file, err := a.discoverer.FindSource(ctx, cfg.root, opts.File)
		if err != nil {
			return err
		}
		files = []domain.SourceFile{file}
	} else {
		files, err = a.discoverer.Sources(ctx, cfg.root, cfg.scanOptions())
		if err != nil {
			return zerr.Wrap(err, "discovery failed")
		}
	}
	if len(files) == 0 {
		return zerr.With(domain.ErrNoSourcesFound, "root", cfg.root)
	}

	builds := make([]domain.SourceBuild, 0, len(files))
	failed := 0
	for _, file := range files {
		build := a.compile(ctx, file, cfg.profile, cfg.verbose)
		if build.Outcome == domain.OutcomeFailed {
			failed++
		}
		builds = append(builds, build)
	}

	a.reporter.Sources(builds)

	if failed > 0 {
		return errors.Join(domain.ErrBuildExecutionFailed, zerr.With(domain.ErrBackendFailed, "failed", failed))
	}
	return nil
}

func (a *App) compile(ctx context.Context, file domain.SourceFile, profile domain.Profile, verbose bool) domain.SourceBuild {
	var buffered bytes.Buffer
	var out io.Writer = &buffered
	if verbose {
		out = a.stdout
	}

	build := domain.SourceBuild{
		Source:  file,
		Output:  file.Output(runtime.GOOS),
		Outcome: domain.OutcomeSucceeded,
	}

	res, err := a.compiler.Compile(ctx, file, profile, out)
	build.Duration = res.Elapsed
	switch {
	case err != nil:
		build.Err = zerr.Wrap(err, "compiler could not run")
	case !res.Succeeded():
		build.Err = zerr.Wrap(domain.ErrBackendFailed, fmt.Sprintf("g++ exited with status %d", res.ExitStatus))
	}

	if build.Err != nil {
		build.Outcome = domain.OutcomeFailed
		_, _ = a.stderr.Write(buffered.Bytes())
	}
	return build
}
