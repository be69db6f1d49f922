package scheduler_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/engine/scheduler"
)

func project(name string, kind domain.Kind) *domain.Project {
	return &domain.Project{
		Name:    name,
		Path:    "/src/" + name,
		Kind:    kind,
		Profile: domain.ProfileRelease,
	}
}

func names(projects []*domain.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	dup := &domain.Project{Name: "core", Path: "/other/core", Kind: domain.KindCargo}
	plan := []*domain.Project{
		project("core", domain.KindCMake),
		project("tool", domain.KindMakefile),
		project("crate", domain.KindCargo),
		dup,
	}

	tests := []struct {
		name   string
		kind   domain.Kind
		target string
		all    bool
		want   []string
		paths  []string
	}{
		{name: "no filter", want: []string{"core", "tool", "crate", "core"}},
		{name: "kind only", kind: domain.KindCargo, want: []string{"crate", "core"}},
		{name: "target", target: "tool", want: []string{"tool"}},
		{name: "first match wins", target: "core", want: []string{"core"}, paths: []string{"/src/core"}},
		{name: "kind before target", kind: domain.KindCargo, target: "core", want: []string{"core"}, paths: []string{"/other/core"}},
		{name: "all ignores target", target: "tool", all: true, want: []string{"core", "tool", "crate", "core"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scheduler.Filter(plan, tt.kind, tt.target, tt.all)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
			if tt.paths != nil {
				assert.Equal(t, tt.paths[0], got[0].Path)
			}
		})
	}
}

func TestFilter_TargetNotFound(t *testing.T) {
	plan := []*domain.Project{
		project("a", domain.KindCMake),
		project("b", domain.KindCMake),
		project("c", domain.KindCargo),
	}

	_, err := scheduler.Filter(plan, domain.KindUnknown, "missing", false)
	require.ErrorContains(t, err, domain.ErrTargetNotFound.Error())

	// The target exists but is filtered out by kind.
	_, err = scheduler.Filter(plan, domain.KindCargo, "a", false)
	require.ErrorContains(t, err, domain.ErrTargetNotFound.Error())
}

func TestConcurrency(t *testing.T) {
	cpus := runtime.NumCPU()

	n, err := scheduler.Concurrency(0)
	require.NoError(t, err)
	assert.Equal(t, cpus, n)

	n, err = scheduler.Concurrency(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = scheduler.Concurrency(cpus + 100)
	require.NoError(t, err)
	assert.Equal(t, cpus, n)

	_, err = scheduler.Concurrency(-1)
	require.ErrorContains(t, err, domain.ErrInvalidConcurrency.Error())
}

func TestWaves(t *testing.T) {
	plan := []*domain.Project{
		project("a", domain.KindCMake),
		project("b", domain.KindCMake),
		project("c", domain.KindCMake),
		project("d", domain.KindCMake),
		project("e", domain.KindCMake),
	}

	waves := scheduler.Waves(plan, 2)
	require.Len(t, waves, 3)
	assert.Equal(t, []string{"a", "b"}, names(waves[0]))
	assert.Equal(t, []string{"c", "d"}, names(waves[1]))
	assert.Equal(t, []string{"e"}, names(waves[2]))

	assert.Len(t, scheduler.Waves(plan, 0), 5)
	assert.Len(t, scheduler.Waves(plan, 10), 1)
	assert.Empty(t, scheduler.Waves(nil, 3))
}
