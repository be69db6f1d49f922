package watcher_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/adapters/watcher"
	"go.trai.ch/focal/internal/core/domain"
)

func TestFingerprints_Changed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.cpp")
	require.NoError(t, os.WriteFile(src, []byte("int main() {}\n"), domain.FilePerm))

	fp := watcher.NewFingerprints()

	assert.Equal(t, []string{src}, fp.Changed([]string{src}), "first sight counts as a change")
	assert.Empty(t, fp.Changed([]string{src}), "same content is not a change")

	require.NoError(t, os.WriteFile(src, []byte("int main() { return 1; }\n"), domain.FilePerm))
	assert.Equal(t, []string{src}, fp.Changed([]string{src}))

	require.NoError(t, os.Remove(src))
	assert.Equal(t, []string{src}, fp.Changed([]string{src}), "removal is a change")
	assert.Empty(t, fp.Changed([]string{src}), "an unknown missing file is not a change")
}

func TestFingerprints_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()

	fp := watcher.NewFingerprints()

	assert.Empty(t, fp.Changed([]string{dir}))
}

func TestIsBuildInput(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/p/CMakeLists.txt", true},
		{"/p/Makefile", true},
		{"/p/Makefile.release", true},
		{"/p/Cargo.toml", true},
		{"/p/src/main.cpp", true},
		{"/p/src/lib.rs", true},
		{"/p/include/api.HPP", true},
		{"/p/cmake/deps.cmake", true},
		{"/p/README.md", false},
		{"/p/notes.txt", false},
		{"/p/.main.cpp.swp", false},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, watcher.IsBuildInput(tt.path))
		})
	}
}
