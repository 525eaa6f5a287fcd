package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/datum-labs/getbd"
)

// Config is the CLI's view of the settings file plus environment.
type Config struct {
	Settings getbd.Settings `mapstructure:",squash"`
	LogLevel string         `mapstructure:"log_level"`
}

// TLD keys such as "com.bd" contain dots, so viper's key delimiter is changed.
const keyDelimiter = "::"

// loadConfig reads path (or getbd.yaml from the search path), then GETBD_*
// environment variables. A missing default file is not an error.
func loadConfig(path string) (*Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("getbd")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "getbd"))
		}
	}

	v.SetEnvPrefix("GETBD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, k := range []string{"api_key", "sandbox_mode", "log_level"} {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	v.SetDefault("sandbox_mode", false)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	// Settings files exported from the hosting panel spell the map "doc-fields".
	if len(cfg.Settings.DocFields) == 0 && v.IsSet("doc-fields") {
		if err := v.UnmarshalKey("doc-fields", &cfg.Settings.DocFields); err != nil {
			return nil, fmt.Errorf("decode doc-fields: %w", err)
		}
	}
	return &cfg, nil
}
