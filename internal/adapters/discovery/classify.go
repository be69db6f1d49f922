package discovery

import (
	"os"
	"path/filepath"

	"go.trai.ch/focal/internal/core/domain"
)

// Classify returns the kind of the project rooted at dir, or KindUnknown.
// When several markers are present the first in domain.MarkerPrecedence wins.
func Classify(dir string) domain.Kind {
	for _, kind := range domain.MarkerPrecedence {
		if hasMarker(dir, kind.Marker()) {
			return kind
		}
	}
	return domain.KindUnknown
}

// hasMarker reports whether dir directly contains a regular file called name.
func hasMarker(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
