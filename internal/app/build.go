package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/focal/internal/adapters/detector"
	"go.trai.ch/focal/internal/adapters/linear"
	"go.trai.ch/focal/internal/adapters/telemetry"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/focal/internal/engine/scheduler"
	"go.trai.ch/focal/internal/ui/output"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures Build and Clean.
type RunOptions struct {
	// Root is the scan root. Empty means the working directory.
	Root string
	// Target names a single project. Ignored when All is set.
	Target string
	All    bool
	// Kind restricts the run to one project kind (cmake, makefile, cargo).
	Kind string
	// Profile is "debug" or "release". Empty defers to focal.yaml.
	Profile string
	Rebuild bool
	// Jobs caps the wave size. Zero defers to focal.yaml, then to the CPU count.
	Jobs       int
	Verbose    bool
	OutputMode string
}

// Build discovers, orders and builds the projects under opts.Root.
// It returns an error wrapping domain.ErrBuildExecutionFailed when any project failed.
func (a *App) Build(ctx context.Context, opts RunOptions) error {
	return a.execute(ctx, domain.OpBuild, opts)
}

// Clean runs the clean operation of every selected project.
// Per-project failures are reported but do not fail the pass.
func (a *App) Clean(ctx context.Context, opts RunOptions) error {
	return a.execute(ctx, domain.OpClean, opts)
}

func (a *App) execute(ctx context.Context, op domain.Operation, opts RunOptions) error {
	start := time.Now()

	kind, err := domain.ParseKind(opts.Kind)
	if err != nil {
		return err
	}

	cfg, err := a.resolveSettings(opts.Root, opts.Profile, opts.Jobs, opts.Verbose)
	if err != nil {
		return err
	}

	k, err := scheduler.Concurrency(cfg.jobs)
	if err != nil {
		return err
	}

	a.loadCache()

	projects, err := a.discoverer.Discover(ctx, cfg.root, cfg.scanOptions())
	if err != nil {
		return zerr.Wrap(err, "discovery failed")
	}
	if len(projects) == 0 {
		return zerr.With(domain.ErrNoProjectsFound, "root", cfg.root)
	}

	plan := projects
	deps := map[string][]string{}
	if op == domain.OpBuild {
		graph := a.extractor.Extract(projects)
		var cycles []error
		plan, cycles = graph.Order(projects)
		for _, cycle := range cycles {
			a.logger.Warn(describeCycle(cycle))
		}
		deps = graph.Edges()
	}

	plan, err = scheduler.Filter(plan, kind, opts.Target, opts.All)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	if cfg.verbose {
		a.logger.Info(fmt.Sprintf("run %s: %s %d project(s), %d at a time, %s profile",
			runID, op, len(plan), k, cfg.profile))
	}

	summary, err := a.schedule(ctx, plan, deps, opts.OutputMode, scheduler.Options{
		Operation:     op,
		Rebuild:       opts.Rebuild,
		Target:        opts.Target,
		All:           opts.All,
		Kind:          kind,
		MaxConcurrent: k,
		Verbose:       cfg.verbose,
		RunID:         runID,
	})
	a.saveCache()
	if err != nil {
		return err
	}

	a.reporter.BuildSummary(plan, op, time.Since(start))

	if op == domain.OpBuild && summary.Failed > 0 {
		return errors.Join(domain.ErrBuildExecutionFailed, zerr.With(domain.ErrBackendFailed, "failed", summary.Failed))
	}
	return nil
}

// schedule runs the renderer next to the scheduler, the way every console run is driven.
func (a *App) schedule(
	ctx context.Context,
	plan []*domain.Project,
	deps map[string][]string,
	outputMode string,
	opts scheduler.Options,
) (scheduler.Summary, error) {
	renderer := a.newRenderer(outputMode)

	provider := telemetry.NewProvider(renderer)
	defer func() {
		_ = provider.Shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer(provider, "focal").WithRenderer(renderer)

	var targets []string
	if !opts.All && opts.Target != "" {
		targets = []string{opts.Target}
	}
	tracer.EmitPlan(ctx, projectNames(plan), deps, targets)

	var summary scheduler.Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		summary = a.scheduler.Run(gctx, tracer, a.store, plan, opts)
		return nil
	})

	return summary, g.Wait()
}

func (a *App) newRenderer(flag string) ports.Renderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), flag)
	if mode == detector.ModeInteractive {
		return linear.NewRenderer(a.stdout, a.stderr, linear.WithProfile(output.ColorProfile))
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

func projectNames(projects []*domain.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

// describeCycle renders a cycle diagnostic with the project it was detected at.
func describeCycle(err error) string {
	msg := err.Error()
	var md interface{ Metadata() map[string]any }
	if errors.As(err, &md) {
		if project, ok := md.Metadata()["project"]; ok {
			msg = fmt.Sprintf("%s at project %v", msg, project)
		}
	}
	return msg
}
