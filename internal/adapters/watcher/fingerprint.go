package watcher

import (
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprints remembers the content hash of every file it has seen so
// that events which leave a file byte-identical (editor saves, touch) can be ignored.
type Fingerprints struct {
	mu     sync.Mutex
	hashes map[string]uint64
}

// NewFingerprints creates an empty fingerprint set.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{hashes: make(map[string]uint64)}
}

// Changed updates the stored fingerprints for paths and returns the ones
// whose content differs from the last observation. A path seen for the
// first time counts as changed, and so does a path that disappeared.
func (f *Fingerprints) Changed(paths []string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var changed []string
	for _, path := range paths {
		sum, err := fileHash(path)
		prev, known := f.hashes[path]
		switch {
		case err != nil:
			if known {
				delete(f.hashes, path)
				changed = append(changed, path)
			}
		case !known || prev != sum:
			f.hashes[path] = sum
			changed = append(changed, path)
		}
	}
	return changed
}

func fileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path comes from the watcher
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	info, err := file.Stat()
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if info.IsDir() {
		return 0, zerr.With(zerr.New("path is a directory"), "path", path)
	}

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}
