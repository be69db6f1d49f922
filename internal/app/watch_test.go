package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/app"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func TestApp_Watch_RebuildsOnChange(t *testing.T) {
	f := newFixture(t)

	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int main() {}\n"), 0o600))

	proj := &domain.Project{
		Name: "app", Path: dir, Kind: domain.KindCMake,
		Tool: domain.GeneratorNinja, Profile: domain.ProfileRelease,
	}
	projects := []*domain.Project{proj}

	events := make(chan ports.WatchEvent)
	t.Cleanup(func() { close(events) })

	builds := make(chan struct{}, 4)

	f.loader.EXPECT().Load(dir).Return(&domain.Config{}, nil).AnyTimes()
	f.store.EXPECT().Load().Return(nil).AnyTimes()
	f.store.EXPECT().Save().Return(nil).AnyTimes()
	f.discoverer.EXPECT().Discover(gomock.Any(), dir, gomock.Any()).Return(projects, nil).AnyTimes()
	f.extractor.EXPECT().Extract(projects).Return(domain.NewDependencyGraph()).AnyTimes()
	f.backend.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(succeed(time.Second)).AnyTimes()
	f.reporter.EXPECT().BuildSummary(projects, domain.OpBuild, gomock.Any()).
		Do(func([]*domain.Project, domain.Operation, time.Duration) { builds <- struct{}{} }).
		AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.watcher.EXPECT().Start(gomock.Any(), dir).Return(nil)
	f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for e := range events {
			if !yield(e) {
				return
			}
		}
	}))
	f.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f.app.WatchWithWindow(ctx, app.RunOptions{Root: dir, OutputMode: "linear"}, 10*time.Millisecond)
	}()

	waitFor(t, builds, "initial build")

	// Output files are not build inputs.
	events <- ports.WatchEvent{Path: filepath.Join(dir, "notes.txt"), Operation: ports.OpWrite}
	events <- ports.WatchEvent{Path: src, Operation: ports.OpWrite}
	waitFor(t, builds, "rebuild")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
	assert.Empty(t, builds)
}

func TestApp_Watch_InitialBuildError(t *testing.T) {
	f := newFixture(t)

	dir := t.TempDir()
	f.loader.EXPECT().Load(dir).Return(&domain.Config{}, nil).Times(2)
	f.store.EXPECT().Load().Return(nil)
	f.discoverer.EXPECT().Discover(gomock.Any(), dir, gomock.Any()).Return(nil, nil)

	err := f.app.WatchWithWindow(context.Background(), app.RunOptions{Root: dir}, time.Millisecond)
	require.ErrorContains(t, err, domain.ErrNoProjectsFound.Error())
}

func TestIgnored(t *testing.T) {
	tests := []struct {
		path  string
		names []string
		want  bool
	}{
		{path: "/src/lib/a.cpp", names: nil, want: false},
		{path: "/src/vendor/lib/a.cpp", names: []string{"vendor"}, want: true},
		{path: "/src/lib/vendor.cpp", names: []string{"vendor"}, want: false},
		{path: "/src/a.cpp", names: []string{"src"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, app.Ignored("/src", tt.path, tt.names))
		})
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}
