package config

// Config is the top-level libman configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Covers   CoversConfig   `mapstructure:"covers"`
	Session  SessionConfig  `mapstructure:"session"`
}

// DatabaseConfig holds record store settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CoversConfig holds cover image sideload settings.
type CoversConfig struct {
	Dir string `mapstructure:"dir"`
}

// SessionConfig holds session identity settings.
type SessionConfig struct {
	// Owner pins the session to a fixed identity instead of minting a random
	// one per run. Useful for scripting; empty means mint.
	Owner string `mapstructure:"owner"`
}
