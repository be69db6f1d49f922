package domain

// Config holds the settings read from focal.yaml.
// Zero values mean "not set" and defer to built-in defaults.
type Config struct {
	// Path is the file the config was read from. Empty when no file exists.
	Path    string
	Profile string
	// Jobs caps the number of concurrent builds. Zero means no cap.
	Jobs    int
	Verbose bool
	// Ignore lists directory names discovery must not descend into.
	Ignore []string
}

// ScanOptions controls a discovery walk.
type ScanOptions struct {
	// Profile is stamped on every discovered project.
	Profile Profile
	// Ignore lists extra directory names that are never descended into.
	Ignore []string
}
