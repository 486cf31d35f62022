// SPDX-License-Identifier: MIT

// Package config loads hillcipher settings from defaults, a YAML file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Name is the config file base name (hillcipher.yaml) and the directory
	// name under the user config dir.
	Name = "hillcipher"

	// EnvPrefix prefixes environment overrides, e.g. HILLCIPHER_MODULUS.
	EnvPrefix = "HILLCIPHER"
)

// Config keys.
const (
	KeyModulus  = "modulus"
	KeyLogLevel = "log_level"
	KeyTrace    = "trace"
)

// ErrInvalidModulus is returned when the resolved modulus is below 1.
var ErrInvalidModulus = errors.New("config: modulus must be positive")

// Config is the resolved configuration.
type Config struct {
	Modulus  int64  `mapstructure:"modulus"`
	LogLevel string `mapstructure:"log_level"`
	Trace    bool   `mapstructure:"trace"`
}

// Defaults returns the built-in values.
func Defaults() map[string]any {
	return map[string]any{
		KeyModulus:  int64(29),
		KeyLogLevel: "info",
		KeyTrace:    false,
	}
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"log-level": KeyLogLevel,
}

// userConfigDir returns <user config dir>/hillcipher.
func userConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}

	return filepath.Join(dir, Name), nil
}

// Load resolves the configuration.
//
//   - Stage 1: defaults.
//   - Stage 2: hillcipher.yaml from path (when non-empty), else the user
//     config dir or the current directory. Only an explicit path must exist.
//   - Stage 3: HILLCIPHER_* environment variables.
//   - Stage 4: flags that were set explicitly (flags may be nil).
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		if dir, err := userConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return c, err
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if c.Modulus < 1 {
		return c, fmt.Errorf("%w: got %d", ErrInvalidModulus, c.Modulus)
	}

	return c, nil
}
