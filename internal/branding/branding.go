// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only has to edit one file to rename the
// tool, its home directory and its environment prefix.
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
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	PackageManager string `yaml:"package_manager"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "create-admin-app",
			DisplayName:    "epig admin app",
			Description:    "Create an epig admin app with no build configuration",
			HomeDir:        ".create-admin-app",
			EnvPrefix:      "CREATE_ADMIN_APP",
			PackageManager: "npm",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-admin-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name used in messages.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".create-admin-app").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_ADMIN_APP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageManager returns the default package manager binary.
func PackageManager() string { load(); return defaults.PackageManager }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("npm_client") → "CREATE_ADMIN_APP_NPM_CLIENT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
