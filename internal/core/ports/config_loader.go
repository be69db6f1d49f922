package ports

import "go.trai.ch/focal/internal/core/domain"

// ConfigLoader defines the interface for loading the optional configuration file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from dir looking for the configuration file.
	// When none exists it returns an empty config and no error.
	Load(dir string) (*domain.Config, error)
}
