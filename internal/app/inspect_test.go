package app_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/app"
	"go.trai.ch/focal/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_Scan(t *testing.T) {
	f := newFixture(t)

	lib := cmakeProject("lib", "/src/lib")
	crate := &domain.Project{Name: "crate", Path: "/src/crate", Kind: domain.KindCargo, Profile: domain.ProfileDebug}

	f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
	f.store.EXPECT().Load().Return(nil)
	f.discoverer.EXPECT().Discover(gomock.Any(), root, domain.ScanOptions{Profile: domain.ProfileDebug}).
		Return([]*domain.Project{lib, crate}, nil)
	f.resolver.EXPECT().Resolve(lib, f.store).Return(domain.GeneratorNinja)
	f.store.EXPECT().Save().Return(nil)
	f.reporter.EXPECT().Projects(root, []*domain.Project{lib})

	err := f.app.Scan(context.Background(), app.ScanOptions{Root: root, Kind: "cmake", Profile: "debug"})
	require.NoError(t, err)
	assert.Equal(t, domain.GeneratorNinja, lib.Tool)
	assert.Empty(t, crate.Tool)
}

func TestApp_Scan_NoProjects(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
	f.store.EXPECT().Load().Return(nil)
	f.discoverer.EXPECT().Discover(gomock.Any(), root, gomock.Any()).
		Return([]*domain.Project{cmakeProject("lib", "/src/lib")}, nil)

	err := f.app.Scan(context.Background(), app.ScanOptions{Root: root, Kind: "cargo"})
	require.ErrorContains(t, err, domain.ErrNoProjectsFound.Error())
}

func TestApp_Check(t *testing.T) {
	f := newFixture(t)

	f.finder.EXPECT().Available(gomock.Any()).DoAndReturn(func(binary string) bool {
		return binary == "cmake" || binary == "ninja"
	}).AnyTimes()
	f.finder.EXPECT().VisualStudioInstalled().Return(false)
	f.reporter.EXPECT().Inventory(gomock.Any()).Do(func(inv domain.ToolInventory) {
		assert.Equal(t, 2, inv.AvailableCount())
		assert.False(t, inv.VisualStudioInstalled)
	})

	require.NoError(t, f.app.Check(context.Background()))
}

func TestApp_CleanAll(t *testing.T) {
	f := newFixture(t)

	removed := []string{"/src/lib/build", "/src/crate/target"}
	f.cleaner.EXPECT().Sweep(gomock.Any(), root).Return(removed, nil)
	f.reporter.EXPECT().CleanAll(removed)

	require.NoError(t, f.app.CleanAll(context.Background(), root))
}

func TestApp_CleanAll_Error(t *testing.T) {
	f := newFixture(t)

	f.cleaner.EXPECT().Sweep(gomock.Any(), root).Return(nil, domain.ErrScanRootInvalid)

	err := f.app.CleanAll(context.Background(), root)
	require.ErrorIs(t, err, domain.ErrScanRootInvalid)
}

func TestApp_BuildSources(t *testing.T) {
	f := newFixture(t)

	hello := domain.SourceFile{Path: "/src/tools/hello.cpp"}
	broken := domain.SourceFile{Path: "/src/tools/broken.cpp"}

	f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
	f.discoverer.EXPECT().Sources(gomock.Any(), root, domain.ScanOptions{Profile: domain.ProfileRelease}).
		Return([]domain.SourceFile{hello, broken}, nil)
	gomock.InOrder(
		f.compiler.EXPECT().Compile(gomock.Any(), hello, domain.ProfileRelease, gomock.Any()).
			Return(domain.InvocationResult{}, nil),
		f.compiler.EXPECT().Compile(gomock.Any(), broken, domain.ProfileRelease, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.SourceFile, _ domain.Profile, out io.Writer) (domain.InvocationResult, error) {
				_, _ = io.WriteString(out, "broken.cpp:1:1: error: expected unqualified-id\n")
				return domain.InvocationResult{ExitStatus: 1}, nil
			}),
	)
	f.reporter.EXPECT().Sources(gomock.Any()).Do(func(builds []domain.SourceBuild) {
		require.Len(t, builds, 2)
		assert.Equal(t, domain.OutcomeSucceeded, builds[0].Outcome)
		assert.Equal(t, domain.OutcomeFailed, builds[1].Outcome)
		assert.ErrorContains(t, builds[1].Err, "g++ exited with status 1")
	})

	err := f.app.BuildSources(context.Background(), app.SourceOptions{Root: root})
	require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	assert.Contains(t, f.stderr.String(), "expected unqualified-id")
}

func TestApp_BuildSources_SingleFile(t *testing.T) {
	f := newFixture(t)

	hello := domain.SourceFile{Path: "/src/tools/hello.cpp"}

	f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
	f.discoverer.EXPECT().FindSource(gomock.Any(), root, "hello.cpp").Return(hello, nil)
	f.compiler.EXPECT().Compile(gomock.Any(), hello, domain.ProfileDebug, f.stdout).
		Return(domain.InvocationResult{}, nil)
	f.reporter.EXPECT().Sources(gomock.Len(1))

	err := f.app.BuildSources(context.Background(), app.SourceOptions{
		Root: root, File: "hello.cpp", Profile: "debug", Verbose: true,
	})
	require.NoError(t, err)
}

func TestApp_BuildSources_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
		f.discoverer.EXPECT().FindSource(gomock.Any(), root, "nope.cpp").
			Return(domain.SourceFile{}, domain.ErrSourceNotFound)

		err := f.app.BuildSources(context.Background(), app.SourceOptions{Root: root, File: "nope.cpp"})
		require.ErrorIs(t, err, domain.ErrSourceNotFound)
	})

	t.Run("none", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
		f.discoverer.EXPECT().Sources(gomock.Any(), root, gomock.Any()).Return(nil, nil)

		err := f.app.BuildSources(context.Background(), app.SourceOptions{Root: root})
		require.ErrorContains(t, err, domain.ErrNoSourcesFound.Error())
	})

	t.Run("compiler missing", func(t *testing.T) {
		f := newFixture(t)
		hello := domain.SourceFile{Path: "/src/hello.cpp"}
		f.loader.EXPECT().Load(root).Return(&domain.Config{}, nil)
		f.discoverer.EXPECT().Sources(gomock.Any(), root, gomock.Any()).Return([]domain.SourceFile{hello}, nil)
		f.compiler.EXPECT().Compile(gomock.Any(), hello, gomock.Any(), gomock.Any()).
			Return(domain.InvocationResult{}, errors.New("exec: \"g++\": executable file not found in $PATH"))
		f.reporter.EXPECT().Sources(gomock.Any()).Do(func(builds []domain.SourceBuild) {
			assert.ErrorContains(t, builds[0].Err, "compiler could not run")
		})

		err := f.app.BuildSources(context.Background(), app.SourceOptions{Root: root})
		require.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
	})
}
