// Package config resolves launcher settings from defaults, an optional
// regent.toml next to the launcher, and the inherited environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vertti/regent/pkg/environ"
	"github.com/vertti/regent/pkg/searchpath"
)

// FileName is the optional config file looked up in the tool root.
const FileName = "regent.toml"

// Environment variables that override file settings.
const (
	SDKIncludeVar = "REGENT_SDK_INCLUDE"
	VerboseVar    = "REGENT_VERBOSE"
)

// ErrConfig is returned when the config file cannot be read or decoded.
var ErrConfig = errors.New("invalid configuration")

// Config holds the settings a launch depends on.
type Config struct {
	Launcher   string `mapstructure:"launcher"`    // command prefix, split on whitespace
	SDKInclude string `mapstructure:"sdk_include"` // CUDA include directory
	Verbose    bool   `mapstructure:"verbose"`     // debug logging
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		SDKInclude: searchpath.DefaultSDKInclude,
	}
}

// envBindings maps config keys to the variables that override them.
var envBindings = map[string]string{
	"launcher":    environ.LauncherVar,
	"sdk_include": SDKIncludeVar,
	"verbose":     VerboseVar,
}

// Load resolves the configuration. dir is searched for FileName; env is
// the inherited environment and takes precedence over the file. The
// process environment is never consulted directly.
func Load(env environ.Getter, dir string) (Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("launcher", defaults.Launcher)
	v.SetDefault("sdk_include", defaults.SDKInclude)
	v.SetDefault("verbose", defaults.Verbose)

	if dir != "" {
		path := filepath.Join(dir, FileName)
		if fileExists(path) {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
			}
		}
	}

	for key, name := range envBindings {
		if value, ok := env.LookupEnv(name); ok {
			v.Set(key, value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if cfg.SDKInclude == "" {
		cfg.SDKInclude = defaults.SDKInclude
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
