// Package config loads tool configuration from files and environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds pathkit tool settings.
type Config struct {
	TempDir           string `mapstructure:"temp_dir"`
	DefaultFileMode   uint32 `mapstructure:"default_file_mode"`
	IdentifyReadLimit int    `mapstructure:"identify_read_limit"`
	PreferNativeSlash bool   `mapstructure:"prefer_native_slash"`
}

// Load reads pathkit configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("pathkit-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.pathkit")
	viper.AddConfigPath("/etc/pathkit")

	// Set defaults
	viper.SetDefault("temp_dir", "") // empty means discover from the environment
	viper.SetDefault("default_file_mode", 0o600)
	viper.SetDefault("identify_read_limit", 64)
	viper.SetDefault("prefer_native_slash", true)

	// Enable environment variable binding
	viper.SetEnvPrefix("PATHKIT")
	viper.AutomaticEnv()

	// Read config file (optional)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}
