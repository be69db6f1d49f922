package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SourceFile is a standalone translation unit that lives outside any project.
// It bypasses the generator and dependency machinery.
type SourceFile struct {
	Path string
}

// Name returns the file's basename.
func (s SourceFile) Name() string {
	return filepath.Base(s.Path)
}

// Output returns the executable path produced for the source on the given platform.
func (s SourceFile) Output(goos string) string {
	stem := strings.TrimSuffix(s.Name(), filepath.Ext(s.Path))
	return filepath.Join(filepath.Dir(s.Path), stem+ExecutableSuffix(goos))
}

// SourceBuild is the result of compiling one SourceFile.
type SourceBuild struct {
	Source   SourceFile
	Output   string
	Outcome  Outcome
	Duration time.Duration
	Err      error
}
