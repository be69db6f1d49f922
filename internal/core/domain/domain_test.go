package domain_test

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/core/domain"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Kind
		wantErr bool
	}{
		{in: "", want: domain.KindUnknown},
		{in: "cmake", want: domain.KindCMake},
		{in: "CMake", want: domain.KindCMake},
		{in: "make", want: domain.KindMakefile},
		{in: "Makefile", want: domain.KindMakefile},
		{in: "cargo", want: domain.KindCargo},
		{in: "meson", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseKind(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrUnknownKind.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProfile(t *testing.T) {
	p, err := domain.ParseProfile("")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileRelease, p)

	p, err = domain.ParseProfile("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileDebug, p)

	_, err = domain.ParseProfile("fast")
	require.ErrorContains(t, err, domain.ErrUnknownProfile.Error())
}

func TestKind_MarkerPrecedence(t *testing.T) {
	markers := make([]string, 0, len(domain.MarkerPrecedence))
	for _, k := range domain.MarkerPrecedence {
		markers = append(markers, k.Marker())
	}
	assert.Equal(t, []string{"CMakeLists.txt", "Makefile", "Cargo.toml"}, markers)
	assert.Equal(t, "build", domain.KindCMake.OutputDir())
	assert.Equal(t, "target", domain.KindCargo.OutputDir())
	assert.Empty(t, domain.KindMakefile.OutputDir())
}

func TestOutcome_Terminal(t *testing.T) {
	assert.False(t, domain.OutcomePending.Terminal())
	assert.False(t, domain.OutcomeRunning.Terminal())
	assert.True(t, domain.OutcomeSucceeded.Terminal())
	assert.True(t, domain.OutcomeFailed.Terminal())
	assert.Equal(t, "failed", domain.OutcomeFailed.String())
}

func TestProject_Helpers(t *testing.T) {
	p := &domain.Project{
		Name:              "A",
		Path:              filepath.Join(string(filepath.Separator), "work", "A"),
		Kind:              domain.KindCMake,
		ConfigureDuration: time.Second,
		BuildDuration:     2 * time.Second,
	}
	assert.Equal(t, 2, p.Depth())
	assert.Equal(t, filepath.Join(p.Path, "CMakeLists.txt"), p.BuildFile())
	assert.Equal(t, 3*time.Second, p.Elapsed())
}

func TestExpandGeneratorAlias(t *testing.T) {
	tests := map[string]string{
		"VS162019":    "Visual Studio 16 2019",
		"VS172022":    "Visual Studio 17 2022",
		"MinGW":       "MinGW Makefiles",
		"Ninja":       "Ninja",
		"Make":        "Unix Makefiles",
		"Xcode":       "Xcode",
		"Ninja Multi": "Ninja Multi",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.ExpandGeneratorAlias(in), in)
	}
}

func TestGeneratorCacheKey(t *testing.T) {
	assert.Equal(t, "/work/A_generator", domain.GeneratorCacheKey("/work/A"))
}

func TestFallbackGenerator(t *testing.T) {
	assert.Equal(t, "Visual Studio 16 2019", domain.FallbackGenerator("windows"))
	assert.Equal(t, "Unix Makefiles", domain.FallbackGenerator("linux"))
}

func TestSourceFile_Output(t *testing.T) {
	src := domain.SourceFile{Path: filepath.Join("tools", "hello.cpp")}
	assert.Equal(t, "hello.cpp", src.Name())
	assert.Equal(t, filepath.Join("tools", "hello"), src.Output("linux"))
	assert.Equal(t, filepath.Join("tools", "hello.exe"), src.Output("windows"))
}

func TestToolInventory_AvailableCount(t *testing.T) {
	inv := domain.ToolInventory{
		Build: []domain.ToolStatus{
			{ToolSpec: domain.BuildTools[0], Available: true},
			{ToolSpec: domain.BuildTools[1], Available: false},
			{ToolSpec: domain.BuildTools[2], Available: true},
		},
	}
	assert.Equal(t, 2, inv.AvailableCount())
}

func TestCommand_String(t *testing.T) {
	cmd := domain.Command{Name: "cmake", Args: []string{"--build", "build"}}
	assert.Equal(t, "cmake --build build", cmd.String())
}

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("hello")
	b := domain.NewInternedString("hello")
	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "hello", a.String())
}

func TestDedupeProjects(t *testing.T) {
	root := &domain.Project{Name: domain.RootProjectName, Path: "/w"}
	b := &domain.Project{Name: "b", Path: "/w/b"}
	a := &domain.Project{Name: "a", Path: "/w/a"}
	nested := &domain.Project{Name: "c", Path: "/w/a/c"}

	once := domain.DedupeProjects([]*domain.Project{nested, b, root, a})
	require.Len(t, once, 4)
	assert.Equal(t, []string{"/w", "/w/a", "/w/b", "/w/a/c"}, paths(once))

	twice := domain.DedupeProjects(append(slices.Clone(once), once...))
	assert.Equal(t, paths(once), paths(twice))
}

func TestDedupeProjects_KeepsFirstOfDuplicates(t *testing.T) {
	first := &domain.Project{Name: "x", Path: "/w/x"}
	second := &domain.Project{Name: "x", Path: "/w/x"}

	out := domain.DedupeProjects([]*domain.Project{first, second})
	require.Len(t, out, 1)
	assert.Same(t, first, out[0])
}

func paths(projects []*domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Path
	}
	return out
}
