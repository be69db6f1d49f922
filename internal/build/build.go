// Package build holds build-time information.
package build

// These default to development values and are overwritten by linker flags:
//
//	-ldflags "-X go.trai.ch/focal/internal/build.Version=v1.2.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
