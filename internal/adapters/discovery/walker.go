// Package discovery finds build projects and standalone sources below a scan root.
package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectDiscoverer = (*Walker)(nil)

// skipDirectories are never descended into.
var skipDirectories = map[string]bool{
	".git": true,
	".hg":  true,
	".jj":  true,
	".svn": true,
}

// Walker implements ports.ProjectDiscoverer on the local filesystem.
type Walker struct {
	logger ports.Logger
}

// NewWalker creates a new Walker.
func NewWalker(logger ports.Logger) *Walker {
	return &Walker{logger: logger}
}

// Discover returns every project root below root.
// Traversal errors below the root are logged and the subtree is skipped.
func (w *Walker) Discover(ctx context.Context, root string, opts domain.ScanOptions) ([]*domain.Project, error) {
	root, err := canonicalRoot(root)
	if err != nil {
		return nil, err
	}

	var projects []*domain.Project
	err = w.walk(ctx, root, opts, func(dir string, kind domain.Kind) {
		projects = append(projects, w.newProject(root, dir, kind, opts.Profile))
	}, nil)
	if err != nil {
		return nil, err
	}

	return domain.DedupeProjects(projects), nil
}

func (w *Walker) newProject(root, dir string, kind domain.Kind, profile domain.Profile) *domain.Project {
	name := filepath.Base(dir)
	if dir == root {
		name = domain.RootProjectName
	}

	p := &domain.Project{
		Name:    name,
		Path:    dir,
		Kind:    kind,
		Profile: profile,
	}

	if kind == domain.KindCargo {
		manifest, err := ReadManifest(p.BuildFile())
		if err != nil {
			w.logger.Warn(fmt.Sprintf("ignoring manifest of %s: %v", dir, err))
		} else {
			p.Manifest = manifest
		}
	}

	return p
}

// walk visits every directory below root that is not skipped. onProject is
// called for each project root, onFile for every regular file.
func (w *Walker) walk(
	ctx context.Context,
	root string,
	opts domain.ScanOptions,
	onProject func(dir string, kind domain.Kind),
	onFile func(path string, d fs.DirEntry),
) error {
	ignored := make(map[string]bool, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignored[name] = true
	}
	outputs := make(map[string]bool)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "root", root)
			}
			w.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			if onFile != nil && d.Type().IsRegular() {
				onFile(path, d)
			}
			return nil
		}

		if path != root && (skipDirectories[d.Name()] || ignored[d.Name()] || outputs[path]) {
			return fs.SkipDir
		}

		kind := Classify(path)
		if kind == domain.KindUnknown {
			return nil
		}
		if out := kind.OutputDir(); out != "" {
			outputs[filepath.Join(path, out)] = true
		}
		if onProject != nil {
			onProject(path, kind)
		}
		return nil
	})
}

// canonicalRoot resolves root to an absolute path without symlinks and
// checks that it is a directory.
func canonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "root", root)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "root", root)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "root", root)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrScanRootInvalid, "root", root)
	}
	return resolved, nil
}
