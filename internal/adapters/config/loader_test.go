package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/focal/internal/adapters/config"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, files fstest.MapFS) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoaderWithFS(mocks.NewMockLogger(ctrl), config.NewMapFSAdapter("/work", files))
}

func TestLoader_Load_Missing(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"src/CMakeLists.txt": {Data: []byte("project(x)\n")},
	})

	cfg, err := loader.Load("/work/src")
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{}, cfg)
}

func TestLoader_Load_Full(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"focal.yaml": {Data: []byte(`
profile: Release
jobs: 4
verbose: true
ignore:
  - third_party
  - vendor
`)},
	})

	cfg, err := loader.Load("/work")
	require.NoError(t, err)
	assert.Equal(t, "/work/focal.yaml", cfg.Path)
	assert.Equal(t, "release", cfg.Profile)
	assert.Equal(t, 4, cfg.Jobs)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, []string{"third_party", "vendor"}, cfg.Ignore)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"focal.yaml":           {Data: []byte("jobs: 2\n")},
		"a/b/c/CMakeLists.txt": {Data: []byte("")},
	})

	cfg, err := loader.Load("/work/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "/work/focal.yaml", cfg.Path)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoader_Load_NearestWins(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"focal.yaml":   {Data: []byte("jobs: 2\n")},
		"a/focal.yaml": {Data: []byte("jobs: 8\n")},
	})

	cfg, err := loader.Load("/work/a")
	require.NoError(t, err)
	assert.Equal(t, "/work/a/focal.yaml", cfg.Path)
	assert.Equal(t, 8, cfg.Jobs)
}

func TestLoader_Load_DirectoryNamedLikeConfigIsSkipped(t *testing.T) {
	loader := newLoader(t, fstest.MapFS{
		"focal.yaml":         {Data: []byte("verbose: true\n")},
		"a/focal.yaml/.keep": {Data: []byte("")},
	})

	cfg, err := loader.Load("/work/a")
	require.NoError(t, err)
	assert.Equal(t, "/work/focal.yaml", cfg.Path)
	assert.True(t, cfg.Verbose)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed yaml",
			content: "jobs: [1, 2\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "wrong type",
			content: "jobs: many\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown profile",
			content: "profile: fastest\n",
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "profile fails oneof",
		},
		{
			name:    "negative jobs",
			content: "jobs: -1\n",
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "jobs fails gte",
		},
		{
			name:    "ignore entry with separator",
			content: "ignore: [\"a/b\"]\n",
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "ignore[0] fails dirname",
		},
		{
			name:    "empty ignore entry",
			content: "ignore: [\"\"]\n",
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "ignore[0] fails required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t, fstest.MapFS{
				"focal.yaml": {Data: []byte(tt.content)},
			})

			_, err := loader.Load("/work")
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr.Error())
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoader_Load_OSFS(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "proj")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte("profile: debug\n"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), cfg.Path)
	assert.Equal(t, "debug", cfg.Profile)
}
