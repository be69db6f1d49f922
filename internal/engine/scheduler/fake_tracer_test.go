package scheduler_test

import (
	"bytes"
	"context"
	"sync"

	"go.trai.ch/focal/internal/core/ports"
)

type fakeSpan struct {
	name  string
	out   bytes.Buffer
	err   error
	ended bool
	attrs map[string]any
}

func (s *fakeSpan) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *fakeSpan) End()                        { s.ended = true }
func (s *fakeSpan) RecordError(err error)       { s.err = err }
func (s *fakeSpan) SetAttribute(key string, value any) {
	s.attrs[key] = value
}

type fakeTracer struct {
	mu    sync.Mutex
	spans map[string]*fakeSpan
}

func newFakeTracer() *fakeTracer {
	return &fakeTracer{spans: make(map[string]*fakeSpan)}
}

func (f *fakeTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg := ports.SpanConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	span := &fakeSpan{name: name, attrs: make(map[string]any)}
	for k, v := range cfg.Attributes {
		span.attrs[k] = v
	}
	f.spans[name] = span
	return ctx, span
}

func (f *fakeTracer) EmitPlan(context.Context, []string, map[string][]string, []string) {}

func (f *fakeTracer) span(name string) *fakeSpan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spans[name]
}
