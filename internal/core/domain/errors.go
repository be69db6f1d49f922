package domain

import "go.trai.ch/zerr"

var (
	// ErrNoProjectsFound is returned when discovery yields no buildable project.
	ErrNoProjectsFound = zerr.New("no projects found")

	// ErrTargetNotFound is returned when a single named project is requested but absent from the scan.
	ErrTargetNotFound = zerr.New("project not found")

	// ErrCycleDetected is reported when the dependency graph contains a cycle.
	// It is never fatal: the sort still emits every project once.
	ErrCycleDetected = zerr.New("circular dependency detected")

	// ErrBuildExecutionFailed is returned when at least one project failed to build.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrBackendFailed is recorded on a project whose backend invocation exited non-zero.
	ErrBackendFailed = zerr.New("backend invocation failed")

	// ErrScanRootInvalid is returned when the scan root does not exist or is not a directory.
	ErrScanRootInvalid = zerr.New("scan root is not a directory")

	// ErrCacheReadFailed is returned when the toolchain cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read toolchain cache")

	// ErrCacheWriteFailed is returned when the toolchain cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write toolchain cache")

	// ErrUnknownKind is returned when a project kind filter cannot be parsed.
	ErrUnknownKind = zerr.New("unknown project kind, expected 'cmake', 'makefile' or 'cargo'")

	// ErrUnknownProfile is returned when a build profile cannot be parsed.
	ErrUnknownProfile = zerr.New("unknown build profile, expected 'debug' or 'release'")

	// ErrInvalidConcurrency is returned when a negative concurrency ceiling is requested.
	ErrInvalidConcurrency = zerr.New("concurrency ceiling must not be negative")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file holds out-of-range values.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrSourceNotFound is returned when a named source file does not exist under the scan root.
	ErrSourceNotFound = zerr.New("source file not found")

	// ErrNotSourceFile is returned when a named file is not a C++ translation unit.
	ErrNotSourceFile = zerr.New("file is not a .cpp source")

	// ErrNoSourcesFound is returned when no standalone source file could be built.
	ErrNoSourcesFound = zerr.New("no standalone source files found")

	// ErrCommandStartFailed is returned when an external command cannot be spawned.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrUnsupportedKind is returned when the backend is asked to drive an unknown project kind.
	ErrUnsupportedKind = zerr.New("unsupported project kind")

	// ErrManifestParseFailed is returned when a Cargo manifest cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse Cargo manifest")

	// ErrUnknownLogFormat is returned when the log format flag is neither pretty nor json.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'pretty' or 'json'")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch scan root")
)
