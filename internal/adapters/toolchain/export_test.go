package toolchain

// NewPathFinderWith builds a PathFinder with injected lookups.
func NewPathFinderWith(lookPath func(string) (string, error), getenv func(string) string, goos string) *PathFinder {
	return &PathFinder{lookPath: lookPath, getenv: getenv, goos: goos}
}
