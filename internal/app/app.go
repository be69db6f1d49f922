// Package app implements the application layer for focal.
package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/focal/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Deps holds the collaborators of App.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Discoverer   ports.ProjectDiscoverer
	Extractor    ports.DependencyExtractor
	Store        ports.ToolchainStore
	Scheduler    *scheduler.Scheduler
	Resolver     ports.ToolchainResolver
	Finder       ports.ToolFinder
	Compiler     ports.SourceCompiler
	Cleaner      ports.ArtifactCleaner
	Reporter     ports.Reporter
	Watcher      ports.Watcher
	Logger       ports.Logger
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   ports.ProjectDiscoverer
	extractor    ports.DependencyExtractor
	store        ports.ToolchainStore
	scheduler    *scheduler.Scheduler
	resolver     ports.ToolchainResolver
	finder       ports.ToolFinder
	compiler     ports.SourceCompiler
	cleaner      ports.ArtifactCleaner
	reporter     ports.Reporter
	watcher      ports.Watcher
	logger       ports.Logger

	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		discoverer:   deps.Discoverer,
		extractor:    deps.Extractor,
		store:        deps.Store,
		scheduler:    deps.Scheduler,
		resolver:     deps.Resolver,
		finder:       deps.Finder,
		compiler:     deps.Compiler,
		cleaner:      deps.Cleaner,
		reporter:     deps.Reporter,
		watcher:      deps.Watcher,
		logger:       deps.Logger,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects the task renderer and compiler output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// jsonSwitcher is implemented by loggers that can emit JSON records.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// SetLogFormat selects "pretty" or "json" log output. Loggers without a JSON
// mode keep their format.
func (a *App) SetLogFormat(format string) error {
	var enable bool
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "pretty":
	case "json":
		enable = true
	default:
		return zerr.With(domain.ErrUnknownLogFormat, "format", format)
	}

	if l, ok := a.logger.(jsonSwitcher); ok {
		l.SetJSON(enable)
	}
	return nil
}

// settings is the merge of CLI flags, focal.yaml and built-in defaults.
type settings struct {
	root    string
	profile domain.Profile
	jobs    int
	verbose bool
	ignore  []string
}

// resolveSettings loads focal.yaml for root and applies the flags on top of it.
// An empty profile flag or a zero jobs flag defers to the config file.
func (a *App) resolveSettings(root, profileFlag string, jobsFlag int, verboseFlag bool) (settings, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return settings{}, zerr.With(zerr.Wrap(err, domain.ErrScanRootInvalid.Error()), "path", root)
	}

	cfg, err := a.configLoader.Load(abs)
	if err != nil {
		return settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	profileName := cfg.Profile
	if profileFlag != "" {
		profileName = profileFlag
	}
	profile, err := domain.ParseProfile(profileName)
	if err != nil {
		return settings{}, err
	}

	jobs := cfg.Jobs
	if jobsFlag != 0 {
		jobs = jobsFlag
	}

	return settings{
		root:    abs,
		profile: profile,
		jobs:    jobs,
		verbose: verboseFlag || cfg.Verbose,
		ignore:  cfg.Ignore,
	}, nil
}

func (s settings) scanOptions() domain.ScanOptions {
	return domain.ScanOptions{Profile: s.profile, Ignore: s.ignore}
}

// loadCache reads the toolchain cache. A broken cache only costs detection time.
func (a *App) loadCache() {
	if err := a.store.Load(); err != nil {
		a.logger.Warn("ignoring toolchain cache: " + err.Error())
	}
}

// saveCache flushes the toolchain cache. A failed save is dropped silently;
// the next run only loses the detection shortcut.
func (a *App) saveCache() {
	_ = a.store.Save()
}
