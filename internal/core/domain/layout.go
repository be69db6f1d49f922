package domain

import (
	"path/filepath"
	"runtime"
)

const (
	// CMakeListsFileName marks a CMake project root.
	CMakeListsFileName = "CMakeLists.txt"

	// MakefileFileName marks a Makefile project root.
	MakefileFileName = "Makefile"

	// CargoManifestFileName marks a Cargo project root.
	CargoManifestFileName = "Cargo.toml"

	// RootProjectName names a project found directly at the scan root.
	RootProjectName = "RootProject"

	// BuildDirName is the CMake binary directory inside a project.
	BuildDirName = "build"

	// ReleaseDirName is the Makefile release output directory inside a project.
	ReleaseDirName = "release"

	// DebugDirName is the Makefile debug output directory inside a project.
	DebugDirName = "debug"

	// CargoTargetDirName is the Cargo output directory inside a project.
	CargoTargetDirName = "target"

	// CacheFileName is the name of the persisted toolchain cache.
	CacheFileName = ".focal-run-cache"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "focal.yaml"

	// SourceExt is the extension of standalone buildable sources.
	SourceExt = ".cpp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ArtifactDirNames are the directory names removed by a clean pass.
var ArtifactDirNames = []string{BuildDirName, ReleaseDirName, DebugDirName}

// DefaultCachePath returns the path of the toolchain cache relative to the working directory.
func DefaultCachePath() string {
	return CacheFileName
}

// ProjectBuildDir returns the CMake binary directory of a project.
func ProjectBuildDir(projectPath string) string {
	return filepath.Join(projectPath, BuildDirName)
}

// ExecutableSuffix returns the suffix appended to compiled executables on the given platform.
func ExecutableSuffix(goos string) string {
	if goos == "windows" {
		return ".exe"
	}
	return ""
}

// HostExecutableSuffix returns ExecutableSuffix for the running platform.
func HostExecutableSuffix() string {
	return ExecutableSuffix(runtime.GOOS)
}
