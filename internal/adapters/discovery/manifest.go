package discovery

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/focal/internal/core/domain"
	"go.trai.ch/zerr"
)

// cargoManifest is the subset of Cargo.toml that is reported.
type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// ReadManifest decodes the [package] table of a Cargo manifest.
func ReadManifest(path string) (domain.Manifest, error) {
	//nolint:gosec // path comes from the discovery walk
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return domain.Manifest{}, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	return domain.Manifest{
		Name:    m.Package.Name,
		Version: m.Package.Version,
	}, nil
}
