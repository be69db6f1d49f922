package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/focal/internal/adapters/linear"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/zerr"
)

func newReporter(t *testing.T) (*linear.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return linear.NewReporter(buf), buf
}

func TestReporter_BuildSummary(t *testing.T) {
	r, buf := newReporter(t)

	r.BuildSummary([]*domain.Project{
		{
			Name: "B", Tool: domain.GeneratorNinja, Outcome: domain.OutcomeSucceeded,
			ConfigureDuration: 300 * time.Millisecond, BuildDuration: 900 * time.Millisecond,
		},
		{
			Name: "A", Tool: domain.GeneratorUnixMakefiles, Outcome: domain.OutcomeFailed,
			BuildDuration: 500 * time.Millisecond,
			Err:           zerr.Wrap(errors.New("exit status 2"), domain.ErrBackendFailed.Error()),
		},
	}, domain.OpBuild, 1700*time.Millisecond)

	goldie.New(t).Assert(t, "report_build", buf.Bytes())
}

func TestReporter_CleanSummary(t *testing.T) {
	r, buf := newReporter(t)

	r.BuildSummary([]*domain.Project{
		{Name: "crate", Tool: domain.ToolCargo, Outcome: domain.OutcomeSucceeded, BuildDuration: 40 * time.Millisecond},
	}, domain.OpClean, 40*time.Millisecond)

	goldie.New(t).Assert(t, "report_clean", buf.Bytes())
}

func TestReporter_CleanAll(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		r, buf := newReporter(t)
		r.CleanAll([]string{"/w/A/build", "/w/B/debug"})
		goldie.New(t).Assert(t, "report_clean_all", buf.Bytes())
	})

	t.Run("nothing", func(t *testing.T) {
		r, buf := newReporter(t)
		r.CleanAll(nil)
		goldie.New(t).Assert(t, "report_clean_all_empty", buf.Bytes())
	})
}

func TestReporter_Projects(t *testing.T) {
	r, buf := newReporter(t)

	r.Projects("/w", []*domain.Project{
		{Name: "A", Path: "/w/A", Kind: domain.KindCMake, Tool: domain.GeneratorNinja},
		{
			Name: "engine", Path: "/w/engine", Kind: domain.KindCargo, Tool: domain.ToolCargo,
			Manifest: domain.Manifest{Name: "engine-core", Version: "0.4.1"},
		},
	})

	goldie.New(t).Assert(t, "report_projects", buf.Bytes())
}

func TestReporter_Inventory(t *testing.T) {
	r, buf := newReporter(t)

	r.Inventory(domain.ToolInventory{
		Build: []domain.ToolStatus{
			{ToolSpec: domain.ToolSpec{Binary: "cmake", Label: "CMake"}, Available: true},
			{ToolSpec: domain.ToolSpec{Binary: "ninja", Label: "Ninja"}, Available: false},
		},
		VisualStudio: []domain.ToolStatus{
			{ToolSpec: domain.ToolSpec{Binary: "cl", Label: "Visual Studio Compiler (cl.exe)"}},
		},
	})

	goldie.New(t).Assert(t, "report_inventory", buf.Bytes())
}

func TestReporter_Sources(t *testing.T) {
	r, buf := newReporter(t)

	r.Sources([]domain.SourceBuild{
		{
			Source:   domain.SourceFile{Path: "/w/tools/hello.cpp"},
			Output:   "/w/tools/hello",
			Outcome:  domain.OutcomeSucceeded,
			Duration: 420 * time.Millisecond,
		},
		{
			Source:  domain.SourceFile{Path: "/w/scratch.cpp"},
			Output:  "/w/scratch",
			Outcome: domain.OutcomeFailed,
			Err:     zerr.With(domain.ErrBackendFailed, "exit", 1),
		},
	})

	goldie.New(t).Assert(t, "report_sources", buf.Bytes())
}
