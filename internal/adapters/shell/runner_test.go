package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/adapters/shell"
	"go.trai.ch/focal/internal/core/domain"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestRunner_Run_Success(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	code, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo configured; echo built"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "configured")
	assert.Contains(t, out.String(), "built")
}

func TestRunner_Run_NonZeroExitIsNotAnError(t *testing.T) {
	skipOnWindows(t)

	var out bytes.Buffer
	code, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Name: "sh",
		Args: []string{"-c", "echo boom >&2; exit 3"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Contains(t, out.String(), "boom")
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("here"), domain.FilePerm))

	var out bytes.Buffer
	code, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Name: "cat",
		Args: []string{"marker.txt"},
		Dir:  dir,
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "here")
}

func TestRunner_Run_MissingExecutable(t *testing.T) {
	var out bytes.Buffer
	code, err := shell.NewRunner().Run(context.Background(), domain.Command{
		Name: "focal-no-such-tool",
	}, &out)

	require.ErrorContains(t, err, domain.ErrCommandStartFailed.Error())
	assert.Equal(t, -1, code)
}
