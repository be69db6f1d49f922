// Package toolchain resolves the generator or toolchain each project is built with.
package toolchain

import (
	"io"
	"os"
	"runtime"

	"go.trai.ch/focal/internal/adapters/buildfile"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
)

var _ ports.ToolchainResolver = (*Resolver)(nil)

// Resolver implements ports.ToolchainResolver.
type Resolver struct {
	finder ports.ToolFinder
	open   func(path string) (io.ReadCloser, error)
	goos   string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithOpener replaces the function used to open build files.
func WithOpener(open func(path string) (io.ReadCloser, error)) Option {
	return func(r *Resolver) {
		r.open = open
	}
}

// WithGOOS sets the platform the fallback generator is chosen for.
func WithGOOS(goos string) Option {
	return func(r *Resolver) {
		r.goos = goos
	}
}

// NewResolver creates a new Resolver probing tools through finder.
func NewResolver(finder ports.ToolFinder, opts ...Option) *Resolver {
	r := &Resolver{
		finder: finder,
		open: func(path string) (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec // path is a discovered build file
		},
		goos: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the cached tool of project when present. Otherwise the tool
// is derived from the project kind and build file, stored in cache and returned.
func (r *Resolver) Resolve(project *domain.Project, cache ports.ToolchainCache) string {
	key := domain.GeneratorCacheKey(project.Path)
	if tool, ok := cache.Get(key); ok && tool != "" {
		return tool
	}

	var tool string
	switch project.Kind {
	case domain.KindMakefile:
		tool = domain.ToolMake
	case domain.KindCargo:
		tool = domain.ToolCargo
	default:
		tool = r.scanBuildFile(project.BuildFile())
		if tool == "" {
			tool = r.detect()
		}
	}

	cache.Put(key, tool)
	return tool
}

// scanBuildFile returns the generator pinned inside path, or "" when the file
// names none or cannot be read.
func (r *Resolver) scanBuildFile(path string) string {
	f, err := r.open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()
	return buildfile.ScanGenerator(f)
}

// detect returns the generator of the first installed candidate, or the platform fallback.
func (r *Resolver) detect() string {
	for _, c := range domain.GeneratorSearchOrder {
		if r.finder.Available(c.Binary) {
			return c.Generator
		}
	}
	return domain.FallbackGenerator(r.goos)
}
