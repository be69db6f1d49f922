package config

// Focalfile represents the structure of the focal.yaml configuration file.
type Focalfile struct {
	Profile string   `yaml:"profile" validate:"omitempty,oneof=debug release"`
	Jobs    int      `yaml:"jobs" validate:"gte=0"`
	Verbose bool     `yaml:"verbose"`
	Ignore  []string `yaml:"ignore" validate:"dive,required,dirname"`
}
