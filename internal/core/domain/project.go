// Package domain contains the core domain models for project discovery, ordering and building.
package domain

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Kind identifies the build system a project requires.
type Kind int

const (
	// KindUnknown is the zero value. As a filter it matches every kind.
	KindUnknown Kind = iota
	// KindCMake marks a directory containing CMakeLists.txt.
	KindCMake
	// KindMakefile marks a directory containing a Makefile.
	KindMakefile
	// KindCargo marks a directory containing Cargo.toml.
	KindCargo
)

// MarkerPrecedence lists the project kinds in classification order.
// A directory holding several markers is classified by the first one present.
var MarkerPrecedence = []Kind{KindCMake, KindMakefile, KindCargo}

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCMake:
		return "CMake"
	case KindMakefile:
		return "Makefile"
	case KindCargo:
		return "Cargo"
	default:
		return "unknown"
	}
}

// Marker returns the build file that identifies a project root of this kind.
func (k Kind) Marker() string {
	switch k {
	case KindCMake:
		return CMakeListsFileName
	case KindMakefile:
		return MakefileFileName
	case KindCargo:
		return CargoManifestFileName
	default:
		return ""
	}
}

// OutputDir returns the directory the kind's toolchain writes into, relative to the project root.
// Discovery never descends into it.
func (k Kind) OutputDir() string {
	switch k {
	case KindCMake:
		return BuildDirName
	case KindCargo:
		return CargoTargetDirName
	default:
		return ""
	}
}

// ParseKind parses a user supplied kind filter. The empty string yields KindUnknown.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return KindUnknown, nil
	case "cmake":
		return KindCMake, nil
	case "make", "makefile":
		return KindMakefile, nil
	case "cargo", "rust":
		return KindCargo, nil
	default:
		return KindUnknown, zerr.With(ErrUnknownKind, "kind", s)
	}
}

// Profile is the build configuration passed to every backend invocation.
type Profile string

const (
	// ProfileDebug builds without optimizations and with debug info.
	ProfileDebug Profile = "Debug"
	// ProfileRelease builds with optimizations. It is the default.
	ProfileRelease Profile = "Release"
)

// ParseProfile parses a profile name case-insensitively. The empty string yields ProfileRelease.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "release":
		return ProfileRelease, nil
	case "debug":
		return ProfileDebug, nil
	default:
		return "", zerr.With(ErrUnknownProfile, "profile", s)
	}
}

// Outcome is the state of a project within a scheduler run.
type Outcome int

const (
	// OutcomePending means the project has not been dispatched yet.
	OutcomePending Outcome = iota
	// OutcomeRunning means a worker owns the project.
	OutcomeRunning
	// OutcomeSucceeded is terminal: every backend phase exited zero.
	OutcomeSucceeded
	// OutcomeFailed is terminal: a backend phase exited non-zero or could not start.
	OutcomeFailed
)

// String returns a lower-case label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Terminal reports whether the outcome is final.
func (o Outcome) Terminal() bool {
	return o == OutcomeSucceeded || o == OutcomeFailed
}

// Manifest holds package metadata read from a project's manifest.
type Manifest struct {
	Name    string
	Version string
}

// Project is one discovered build unit.
// A project is owned by exactly one scheduler worker while it is being built.
type Project struct {
	// Name is the directory basename, or RootProjectName for the scan root.
	Name string
	// Path is the canonical absolute path. It is the identity key.
	Path string
	// Kind is the build system, chosen by marker precedence.
	Kind Kind
	// Tool is the resolved generator or toolchain. Empty until resolved.
	Tool string
	// Profile is inherited from the run configuration at discovery time.
	Profile Profile
	// Manifest is filled for Cargo projects when the manifest parses.
	Manifest Manifest

	Outcome           Outcome
	ConfigureDuration time.Duration
	BuildDuration     time.Duration
	// Err holds the failure cause when Outcome is OutcomeFailed.
	Err error
}

// Depth returns the number of path separators in the project path.
// It only serves the coarse root-first ordering of discovery.
func (p *Project) Depth() int {
	return strings.Count(p.Path, string(filepath.Separator))
}

// BuildFile returns the path of the marker file for the project's kind.
func (p *Project) BuildFile() string {
	return filepath.Join(p.Path, p.Kind.Marker())
}

// Elapsed returns the total time spent in backend phases.
func (p *Project) Elapsed() time.Duration {
	return p.ConfigureDuration + p.BuildDuration
}

// DedupeProjects keeps one project per canonical path and orders the result
// root-first. Projects are sorted by path, adjacent duplicates collapse to the
// first one, then a stable sort by depth is applied.
func DedupeProjects(projects []*Project) []*Project {
	out := slices.Clone(projects)
	slices.SortStableFunc(out, func(a, b *Project) int {
		return cmp.Compare(a.Path, b.Path)
	})
	out = slices.CompactFunc(out, func(a, b *Project) bool {
		return a.Path == b.Path
	})
	slices.SortStableFunc(out, func(a, b *Project) int {
		return cmp.Compare(a.Depth(), b.Depth())
	})
	return out
}
