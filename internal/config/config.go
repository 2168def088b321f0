package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a prism invocation.
// Values are populated from .prism.yaml, PRISM_* env vars, and CLI flags.
type Config struct {
	// Catalog is the path of a TOML product catalog. Empty selects the
	// built-in sample products.
	Catalog string `mapstructure:"catalog"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
