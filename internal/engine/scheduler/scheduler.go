// Package scheduler runs an ordered list of projects through the build backend
// in fixed-size concurrent waves.
package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls one scheduler run.
type Options struct {
	// Operation is domain.OpBuild or domain.OpClean.
	Operation domain.Operation
	// Rebuild cleans each project before building it.
	Rebuild bool
	// Target restricts the run to the first project with this name unless All is set.
	Target string
	All    bool
	// Kind drops every project of another kind. KindUnknown keeps all.
	Kind domain.Kind
	// MaxConcurrent is the wave size. Values below one are treated as one.
	MaxConcurrent int
	// Verbose streams backend output. Otherwise output is shown only for failed projects.
	Verbose bool
	// RunID is attached to every project span.
	RunID string
}

// Summary counts the terminal outcomes of a run.
type Summary struct {
	Succeeded int
	Failed    int
	// Peak is the largest number of projects that were Running at once.
	Peak int
}

// Total returns the number of projects that reached a terminal outcome.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// Scheduler dispatches projects to the build backend.
type Scheduler struct {
	backend  ports.BuildBackend
	resolver ports.ToolchainResolver
}

// NewScheduler creates a new Scheduler.
func NewScheduler(backend ports.BuildBackend, resolver ports.ToolchainResolver) *Scheduler {
	return &Scheduler{backend: backend, resolver: resolver}
}

// Filter applies the kind filter and then the single-target selection.
// The returned slice shares project pointers with plan.
func Filter(plan []*domain.Project, kind domain.Kind, target string, all bool) ([]*domain.Project, error) {
	filtered := make([]*domain.Project, 0, len(plan))
	for _, p := range plan {
		if kind == domain.KindUnknown || p.Kind == kind {
			filtered = append(filtered, p)
		}
	}

	if all || target == "" {
		return filtered, nil
	}

	for _, p := range filtered {
		if p.Name == target {
			return []*domain.Project{p}, nil
		}
	}
	return nil, zerr.With(domain.ErrTargetNotFound, "project", target)
}

// Concurrency returns the wave size: the number of CPUs, capped by ceiling when ceiling is positive.
func Concurrency(ceiling int) (int, error) {
	if ceiling < 0 {
		return 0, zerr.With(domain.ErrInvalidConcurrency, "jobs", ceiling)
	}
	n := runtime.NumCPU()
	if ceiling > 0 && ceiling < n {
		n = ceiling
	}
	return n, nil
}

// Waves partitions plan into consecutive batches of at most k projects.
func Waves(plan []*domain.Project, k int) [][]*domain.Project {
	if k < 1 {
		k = 1
	}
	waves := make([][]*domain.Project, 0, (len(plan)+k-1)/k)
	for start := 0; start < len(plan); start += k {
		end := min(start+k, len(plan))
		waves = append(waves, plan[start:end])
	}
	return waves
}

// Run executes plan wave by wave and annotates every project with its outcome and timings.
// Every project is attempted. A failed project never stops the others.
func (s *Scheduler) Run(
	ctx context.Context,
	tracer ports.Tracer,
	cache ports.ToolchainCache,
	plan []*domain.Project,
	opts Options,
) Summary {
	r := &run{
		scheduler: s,
		tracer:    tracer,
		opts:      opts,
	}
	r.cache = &lockedCache{mu: &r.mu, cache: cache}

	k := max(opts.MaxConcurrent, 1)
	for _, wave := range Waves(plan, k) {
		var g errgroup.Group
		g.SetLimit(k)
		for _, p := range wave {
			g.Go(func() error {
				r.execute(ctx, p)
				return nil
			})
		}
		_ = g.Wait()
	}

	return r.summary
}

// run is the shared state of one Run call. mu guards the cache, console
// writes, span lifecycle and the counters.
type run struct {
	scheduler *Scheduler
	tracer    ports.Tracer
	cache     *lockedCache
	opts      Options

	mu      sync.Mutex
	summary Summary
	running int
}

func (r *run) execute(ctx context.Context, p *domain.Project) {
	r.mu.Lock()
	ctx, span := r.tracer.Start(ctx, p.Name,
		ports.WithAttribute("project.path", p.Path),
		ports.WithAttribute("project.kind", p.Kind.String()),
		ports.WithAttribute("run.id", r.opts.RunID),
	)
	p.Outcome = domain.OutcomeRunning
	r.running++
	r.summary.Peak = max(r.summary.Peak, r.running)
	r.mu.Unlock()

	if p.Tool == "" {
		p.Tool = r.scheduler.resolver.Resolve(p, r.cache)
	}
	span.SetAttribute("project.tool", p.Tool)

	var buffered bytes.Buffer
	var out io.Writer = &buffered
	if r.opts.Verbose {
		out = &lockedWriter{mu: &r.mu, w: span}
	}

	err := r.phases(ctx, p, out)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.running--
	if err != nil {
		p.Outcome = domain.OutcomeFailed
		p.Err = err
		r.summary.Failed++
		if buffered.Len() > 0 {
			_, _ = span.Write(buffered.Bytes())
		}
		span.RecordError(err)
	} else {
		p.Outcome = domain.OutcomeSucceeded
		r.summary.Succeeded++
	}
	span.End()
}

func (r *run) phases(ctx context.Context, p *domain.Project, out io.Writer) error {
	if r.opts.Operation == domain.OpClean {
		res, err := r.invoke(ctx, p, domain.OpClean, out)
		p.BuildDuration = res.Elapsed
		return err
	}

	if r.opts.Rebuild {
		if _, err := r.invoke(ctx, p, domain.OpClean, out); err != nil {
			_, _ = fmt.Fprintf(out, "rebuild: %v, building anyway\n", err)
		}
	}

	if p.Kind == domain.KindCMake {
		res, err := r.invoke(ctx, p, domain.OpConfigure, out)
		p.ConfigureDuration = res.Elapsed
		if err != nil {
			return err
		}
	}

	res, err := r.invoke(ctx, p, domain.OpBuild, out)
	p.BuildDuration = res.Elapsed
	return err
}

func (r *run) invoke(
	ctx context.Context,
	p *domain.Project,
	op domain.Operation,
	out io.Writer,
) (domain.InvocationResult, error) {
	res, err := r.scheduler.backend.Invoke(ctx, domain.NewInvocation(p, op), out)
	if err != nil {
		return res, zerr.With(zerr.Wrap(err, op.String()+" could not run"), "tool", p.Tool)
	}
	if !res.Succeeded() {
		msg := fmt.Sprintf("%s exited with status %d", op, res.ExitStatus)
		return res, zerr.With(zerr.Wrap(domain.ErrBackendFailed, msg), "tool", p.Tool)
	}
	return res, nil
}

// lockedCache serializes every cache access through the run mutex.
type lockedCache struct {
	mu    *sync.Mutex
	cache ports.ToolchainCache
}

func (c *lockedCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Get(key)
}

func (c *lockedCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Put(key, value)
}

// lockedWriter serializes console writes through the run mutex.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
