package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"go.trai.ch/focal/internal/core/ports"
)

var _ ports.ToolFinder = (*PathFinder)(nil)

// visualStudioEditions are the installation directories checked below
// Program Files when looking for Visual Studio.
var visualStudioEditions = []string{
	filepath.Join("2022", "Community"),
	filepath.Join("2022", "Professional"),
	filepath.Join("2022", "Enterprise"),
	filepath.Join("2019", "Community"),
	filepath.Join("2019", "Professional"),
	filepath.Join("2019", "Enterprise"),
	filepath.Join("2017", "Community"),
	filepath.Join("2017", "Professional"),
	filepath.Join("2017", "Enterprise"),
}

// PathFinder implements ports.ToolFinder using the executable search path.
type PathFinder struct {
	lookPath func(file string) (string, error)
	getenv   func(key string) string
	goos     string
}

// NewPathFinder creates a new PathFinder for the running platform.
func NewPathFinder() *PathFinder {
	return &PathFinder{
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
		goos:     runtime.GOOS,
	}
}

// Available reports whether binary resolves on PATH.
func (p *PathFinder) Available(binary string) bool {
	_, err := p.lookPath(binary)
	return err == nil
}

// VisualStudioInstalled looks for a Visual Studio installation directory or
// the vswhere locator. It is always false outside Windows.
func (p *PathFinder) VisualStudioInstalled() bool {
	if p.goos != "windows" {
		return false
	}

	for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		base := p.getenv(env)
		if base == "" {
			continue
		}
		for _, edition := range visualStudioEditions {
			if info, err := os.Stat(filepath.Join(base, "Microsoft Visual Studio", edition)); err == nil && info.IsDir() {
				return true
			}
		}
	}

	return p.Available("vswhere")
}
