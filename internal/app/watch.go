package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/focal/internal/adapters/watcher"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch builds once and then rebuilds whenever the content of a build input
// below opts.Root changes. It returns when ctx is canceled.
// Failed builds keep the watch alive; configuration and discovery errors end it.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	return a.watch(ctx, opts, watcher.DefaultDebounceWindow)
}

func (a *App) watch(ctx context.Context, opts RunOptions, window time.Duration) error {
	cfg, err := a.resolveSettings(opts.Root, opts.Profile, opts.Jobs, opts.Verbose)
	if err != nil {
		return err
	}

	if err := a.rebuild(ctx, opts); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, cfg.root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", cfg.root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	trigger := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case trigger <- paths:
		default:
			// A rebuild is already queued and will pick up these files.
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if watcher.IsBuildInput(event.Path) && !ignored(cfg.root, event.Path, cfg.ignore) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info("watching " + cfg.root + " for changes")
	fingerprints := watcher.NewFingerprints()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-trigger:
			changed := fingerprints.Changed(paths)
			if len(changed) == 0 {
				continue
			}
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(changed)))
			if err := a.rebuild(ctx, opts); err != nil {
				return err
			}
		}
	}
}

// rebuild runs Build and swallows project failures, which the summary already reports.
func (a *App) rebuild(ctx context.Context, opts RunOptions) error {
	err := a.Build(ctx, opts)
	if err == nil || errors.Is(err, domain.ErrBuildExecutionFailed) {
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// ignored reports whether path lies in a directory named in names.
func ignored(root, path string, names []string) bool {
	if len(names) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	parts := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
	return slices.ContainsFunc(parts, func(part string) bool {
		return slices.Contains(names, part)
	})
}
