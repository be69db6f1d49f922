package discovery

import (
	"cmp"
	"context"
	"io/fs"
	"path/filepath"
	"slices"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sources returns the .cpp files below root whose directory holds no project marker.
func (w *Walker) Sources(ctx context.Context, root string, opts domain.ScanOptions) ([]domain.SourceFile, error) {
	root, err := canonicalRoot(root)
	if err != nil {
		return nil, err
	}

	standalone := make(map[string]bool)
	var sources []domain.SourceFile
	err = w.walk(ctx, root, opts, nil, func(path string, _ fs.DirEntry) {
		if filepath.Ext(path) != domain.SourceExt {
			return
		}
		dir := filepath.Dir(path)
		isStandalone, seen := standalone[dir]
		if !seen {
			isStandalone = Classify(dir) == domain.KindUnknown
			standalone[dir] = isStandalone
		}
		if isStandalone {
			sources = append(sources, domain.SourceFile{Path: path})
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(sources, func(a, b domain.SourceFile) int {
		return cmp.Compare(a.Path, b.Path)
	})
	return sources, nil
}

// FindSource returns the first regular file below root named name, in
// lexical walk order. The file must be a .cpp source.
func (w *Walker) FindSource(ctx context.Context, root, name string) (domain.SourceFile, error) {
	root, err := canonicalRoot(root)
	if err != nil {
		return domain.SourceFile{}, err
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirectories[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == name && d.Type().IsRegular() {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return domain.SourceFile{}, zerr.With(err, "file", name)
	}

	if found == "" {
		return domain.SourceFile{}, zerr.With(domain.ErrSourceNotFound, "file", name)
	}
	if filepath.Ext(found) != domain.SourceExt {
		return domain.SourceFile{}, zerr.With(domain.ErrNotSourceFile, "file", found)
	}
	return domain.SourceFile{Path: found}, nil
}
