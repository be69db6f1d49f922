package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/focal/internal/adapters/toolchain"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// ScanOptions configures Scan.
type ScanOptions struct {
	Root    string
	Kind    string
	Profile string
}

// Scan lists the projects under opts.Root with their resolved generators.
// Resolutions are written to the toolchain cache.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	kind, err := domain.ParseKind(opts.Kind)
	if err != nil {
		return err
	}

	cfg, err := a.resolveSettings(opts.Root, opts.Profile, 0, false)
	if err != nil {
		return err
	}

	a.loadCache()

	projects, err := a.discoverer.Discover(ctx, cfg.root, cfg.scanOptions())
	if err != nil {
		return zerr.Wrap(err, "discovery failed")
	}
	projects, _ = scheduler.Filter(projects, kind, "", true)
	if len(projects) == 0 {
		return zerr.With(domain.ErrNoProjectsFound, "root", cfg.root)
	}

	for _, p := range projects {
		p.Tool = a.resolver.Resolve(p, a.store)
	}
	a.saveCache()

	a.reporter.Projects(cfg.root, projects)
	return nil
}

// Check reports which build tools are installed.
func (a *App) Check(_ context.Context) error {
	a.reporter.Inventory(toolchain.Inventory(a.finder))
	return nil
}

// CleanAll removes every build output directory below root, project or not.
func (a *App) CleanAll(ctx context.Context, root string) error {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "path", root)
	}

	removed, err := a.cleaner.Sweep(ctx, abs)
	if err != nil {
		return err
	}

	a.reporter.CleanAll(removed)
	return nil
}
