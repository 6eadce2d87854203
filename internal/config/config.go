package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/wyx2333333/create-rac/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyRegistry  = "registry"
	KeyTemplates = "templates"
)

// Dir returns the path to the config directory (~/.create-rac/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.create-rac/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	_ = viper.BindEnv(KeyRegistry, branding.EnvVar(KeyRegistry))
	viper.SetDefault(KeyRegistry, branding.RegistryURL())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Registry returns the npm registry base URL without a trailing slash.
func Registry() string {
	reg := strings.TrimRight(Get(KeyRegistry), "/")
	if reg == "" {
		return branding.RegistryURL()
	}
	return reg
}

// UnmarshalKey decodes a structured config value into out.
func UnmarshalKey(key string, out any) error {
	if !viper.IsSet(key) {
		return nil
	}
	if err := viper.UnmarshalKey(key, out); err != nil {
		return fmt.Errorf("decoding config key %q: %w", key, err)
	}
	return nil
}
