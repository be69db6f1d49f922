// Package linear provides a synchronous, line-buffered console renderer and
// the end-of-run reports.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/focal/internal/ui/output"
	"go.trai.ch/focal/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with chronological, name-prefixed lines.
// Lifecycle messages go to stderr, project output to stdout.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	tasks   map[string]*taskState
	started int
	total   int
}

type taskState struct {
	name      string
	startTime time.Time
	partial   bytes.Buffer
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	profile func() termenv.Profile
}

// WithProfile selects the color profile. It defaults to output.ColorProfileANSI.
func WithProfile(profile func() termenv.Profile) Option {
	return func(c *rendererConfig) {
		c.profile = profile
	}
}

// NewRenderer creates a new Renderer. Nil writers fall back to the process streams.
func NewRenderer(stdout, stderr io.Writer, opts ...Option) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg := rendererConfig{profile: output.ColorProfileANSI}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stderr, cfg.profile),
		tasks:  make(map[string]*taskState),
	}
}

// Start is a no-op; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes the partial lines of tasks that never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		r.flushLocked(task)
	}
	return nil
}

// Wait is a no-op; the renderer writes synchronously.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the planned projects in execution order.
func (r *Renderer) OnPlanEmit(projects []string, _ map[string][]string, targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.total = len(projects)
	r.started = 0

	label := "all projects"
	if len(targets) > 0 {
		label = strings.Join(targets, ", ")
	}
	_, _ = fmt.Fprintf(r.stderr, "Planning %d project(s) for %s: %s\n",
		len(projects), label, strings.Join(projects, " → "))
}

// OnTaskStart prints a start line with the position of the task in the plan.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = &taskState{name: name, startTime: startTime}
	r.started++

	progress := ""
	if r.total > 0 {
		progress = fmt.Sprintf(" (%d/%d)", r.started, r.total)
	}
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...%s\n", r.prefix(name), progress)
}

// OnTaskLog prints every complete line of data. A trailing partial line is
// kept until the next write or the task completes.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}

	task.partial.Write(data)
	for {
		i := bytes.IndexByte(task.partial.Bytes(), '\n')
		if i < 0 {
			return
		}
		line := task.partial.Next(i + 1)
		r.printLineLocked(task.name, line)
	}
}

// OnTaskComplete flushes the task's output and prints its result.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	r.flushLocked(task)
	delete(r.tasks, spanID)

	elapsed := FormatDuration(endTime.Sub(task.startTime))
	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %s: %v\n", r.prefix(task.name), symbol, elapsed, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %s\n", r.prefix(task.name), symbol, elapsed)
}

func (r *Renderer) prefix(name string) string {
	return r.output.String("[" + name + "]").Faint().String()
}

// flushLocked prints the task's pending partial line. r.mu must be held.
func (r *Renderer) flushLocked(task *taskState) {
	if task.partial.Len() > 0 {
		r.printLineLocked(task.name, task.partial.Bytes())
		task.partial.Reset()
	}
}

// printLineLocked prints line with the task prefix. r.mu must be held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}

// FormatDuration rounds d for display.
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
