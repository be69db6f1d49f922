package ports

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// ToolchainCache is a key to toolchain mapping consulted during resolution.
type ToolchainCache interface {
	// Get returns the cached value for key.
	Get(key string) (string, bool)
	// Put stores value under key, replacing any previous value.
	Put(key, value string)
}

// ToolchainStore is a ToolchainCache backed by persistent storage.
type ToolchainStore interface {
	ToolchainCache

	// Load replaces the in-memory contents with the persisted ones.
	// A missing file is not an error.
	Load() error

	// Save overwrites the persisted contents with the in-memory ones.
	Save() error
}
