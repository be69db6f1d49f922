package ports

import "go.trai.ch/focal/internal/core/domain"

//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// ToolchainResolver picks the generator or toolchain of a project.
type ToolchainResolver interface {
	// Resolve returns the tool for project. It consults cache first and
	// writes the result back to it. It never fails: ambiguity falls back
	// to probing the installed tools.
	Resolve(project *domain.Project, cache ToolchainCache) string
}

// ToolFinder reports which executables are installed.
type ToolFinder interface {
	// Available reports whether binary can be found on the search path.
	Available(binary string) bool
	// VisualStudioInstalled reports whether a Visual Studio installation is present.
	VisualStudioInstalled() bool
}
