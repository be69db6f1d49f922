package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/adapters/backend"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestSweeper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := t.TempDir()
	mkdirs(t, root,
		"A/build/CMakeFiles",
		"A/src",
		"B/release",
		"B/debug",
		"C/nested/build",
		".git/debug",
	)
	touch(t, filepath.Join(root, "A", "build", "CMakeCache.txt"))

	removed, err := backend.NewSweeper(mocks.NewMockLogger(ctrl)).Sweep(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "A", "build"),
		filepath.Join(root, "B", "debug"),
		filepath.Join(root, "B", "release"),
		filepath.Join(root, "C", "nested", "build"),
	}, removed)
	assert.DirExists(t, filepath.Join(root, "A", "src"))
	assert.DirExists(t, filepath.Join(root, ".git", "debug"))
	assert.NoDirExists(t, filepath.Join(root, "A", "build"))
}

func TestSweeper_Sweep_NothingToRemove(t *testing.T) {
	ctrl := gomock.NewController(t)

	removed, err := backend.NewSweeper(mocks.NewMockLogger(ctrl)).Sweep(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestSweeper_Sweep_InvalidRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, domain.FilePerm))

	_, err := backend.NewSweeper(mocks.NewMockLogger(ctrl)).Sweep(context.Background(), file)
	require.ErrorContains(t, err, domain.ErrScanRootInvalid.Error())
}
