// Package cache implements the persistent toolchain cache.
package cache

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"

	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/focal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainStore = (*Store)(nil)

// Store implements ports.ToolchainStore on a newline-delimited key=value file.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	path    string
	entries map[string]string
}

// NewStore creates a Store persisted at path. Nothing is read until Load.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		entries: make(map[string]string),
	}
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory entries with the file contents.
// A missing file leaves the cache empty. Lines without '=' or with an
// empty key or value are skipped.
func (s *Store) Load() error {
	s.entries = make(map[string]string)

	//nolint:gosec // path is the fixed cache location
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		s.entries[key] = value
	}
	if err := scanner.Err(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", s.path)
	}

	return nil
}

// Save overwrites the file with the current entries, sorted by key.
func (s *Store) Save() error {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(s.entries[k])
		buf.WriteByte('\n')
	}

	//nolint:gosec // path is the fixed cache location
	if err := os.WriteFile(s.path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Put stores value under key.
func (s *Store) Put(key, value string) {
	s.entries[key] = value
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// parseLine splits a record on its last '='. Keys are paths and may contain
// '=' themselves, values are generator names and never do.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSuffix(line, "\r")
	i := strings.LastIndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	key, value = line[:i], line[i+1:]
	if key == "" || value == "" {
		return "", "", false
	}
	return key, value, true
}
