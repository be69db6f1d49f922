package backend

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCleaner = (*Sweeper)(nil)

// Sweeper implements ports.ArtifactCleaner.
type Sweeper struct {
	logger ports.Logger
}

// NewSweeper creates a new Sweeper.
func NewSweeper(logger ports.Logger) *Sweeper {
	return &Sweeper{logger: logger}
}

// Sweep removes every build, release and debug directory below root and
// returns the removed paths. Failures to remove a directory are logged.
func (s *Sweeper) Sweep(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "root", root)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrScanRootInvalid, "root", root)
	}

	var removed []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping %s: %v", path, err))
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if d.Name() == ".git" {
			return fs.SkipDir
		}
		if !slices.Contains(domain.ArtifactDirNames, d.Name()) {
			return nil
		}

		if err := os.RemoveAll(path); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to clean %s: %v", path, err))
		} else {
			removed = append(removed, path)
		}
		return fs.SkipDir
	})
	if err != nil {
		return removed, err
	}
	return removed, nil
}
