// Copyright (c) 2026 Keymaster Team
// Keycalc - terminal keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists Keycalc settings. Values are layered
// defaults < config file < KEYCALC_* environment < command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName       = "keycalc"
	fileName      = appName + ".yaml"
	legacyFile    = "." + appName + ".yaml"
	envPrefix     = appName
	defaultLocale = "en"
)

// Config holds the user-facing settings.
type Config struct {
	// Language is the UI locale, e.g. "en" or "de".
	Language string `mapstructure:"language" yaml:"language"`
	// Clipboard enables copying the display to the system clipboard.
	Clipboard bool `mapstructure:"clipboard" yaml:"clipboard"`
	// AltScreen runs the TUI in the terminal's alternate screen.
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
	// LogFile receives log output while the TUI owns the terminal.
	LogFile string `mapstructure:"log_file" yaml:"log_file,omitempty"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":   defaultLocale,
		"clipboard":  true,
		"alt_screen": true,
		"log_file":   "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keycalc")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, fileName), nil
}

// LoadConfig resolves T from defaults, the first config file found, the
// environment and the flags of cmd. An explicit path takes precedence over
// the search locations. A missing file is reported as
// viper.ConfigFileNotFoundError alongside the resolved values.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	mergeLegacyConfig(v)

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// bindFlags binds every flag under its own name and, for dashed names,
// under the matching snake_case config key (--log-file -> log_file).
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || !strings.Contains(f.Name, "-") {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return bindErr
}

// mergeLegacyConfig merges a `.keycalc.yaml` in the current directory if
// one exists. Errors are ignored so a broken dotfile cannot block startup.
func mergeLegacyConfig(v *viper.Viper) {
	if _, err := os.Stat(legacyFile); err == nil {
		v.SetConfigFile(legacyFile)
		_ = v.MergeInConfig()
		v.SetConfigFile("")
	}
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("could not write config file %s: %w", path, err)
	}
	return nil
}
