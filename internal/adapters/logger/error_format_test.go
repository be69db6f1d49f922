package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/focal/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("plain"),
			wantMessages: []string{"plain"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr without metadata",
			err:          zerr.New("no projects found"),
			wantMessages: []string{"no projects found"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("exit status 2"), "cmake --build"), "build failed"),
			wantMessages: []string{"build failed", "cmake --build", "exit status 2"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata accumulates on one link",
			err:          zerr.With(zerr.With(zerr.New("project not found"), "target", "core"), "kind", "CMake"),
			wantMessages: []string{"project not found"},
			wantMetadata: []map[string]any{{"target": "core", "kind": "CMake"}},
		},
		{
			name: "metadata on every link",
			err: zerr.With(
				zerr.Wrap(zerr.With(zerr.New("permission denied"), "path", "/w/a"), "failed to write toolchain cache"),
				"file", ".focal-run-cache",
			),
			wantMessages: []string{"failed to write toolchain cache", "permission denied"},
			wantMetadata: []map[string]any{{"file": ".focal-run-cache"}, {"path": "/w/a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message at %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata at %d", i)
			}
		})
	}
}

func TestCollectErrorEntries_Nil(t *testing.T) {
	assert.Empty(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "no projects found"}},
			want:    "Error: no projects found",
		},
		{
			name:    "chain",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "middle"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → middle\n    → inner",
		},
		{
			name: "metadata sorted by key",
			entries: []logger.ErrorEntry{
				{Message: "project not found", Metadata: map[string]any{"target": "core", "kind": "CMake"}},
			},
			want: "Error: project not found\n       kind: CMake\n       target: core",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"exit": 2}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      exit: 2",
		},
		{
			name: "multiline messages",
			entries: []logger.ErrorEntry{
				{Message: "first\nsecond"},
				{Message: "cause one\ncause two"},
			},
			want: "Error: first\n       second\n\n  Caused by:\n    → cause one\n      cause two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
