// Package branding provides compile-time identity values for the CLI.
//
// The values are read from the embedded branding.yaml so a fork can rename
// the tool, its npm package, and its config directory without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	PackageName string `yaml:"package_name"`
	RegistryURL string `yaml:"registry_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "create-rac",
			DisplayName: "React Awesome CLI",
			Description: "Scaffold a React project from a curated template",
			HomeDir:     ".create-rac",
			EnvPrefix:   "CREATE_RAC",
			PackageName: "create-rac",
			RegistryURL: "https://registry.npmjs.org",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-rac").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-rac").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_RAC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageName returns the npm package name the update check looks up.
func PackageName() string { load(); return defaults.PackageName }

// RegistryURL returns the default npm registry base URL.
func RegistryURL() string { load(); return defaults.RegistryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("registry") → "CREATE_RAC_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
