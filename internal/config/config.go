package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/evel-pig/create-admin-app/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyNPMClient      = "npm_client"
	KeyGitBinary      = "git_binary"
	KeyVCSBackend     = "vcs_backend"
	KeyTemplateDir    = "template_dir"
	KeyMinNodeVersion = "min_node_version"
)

// Version-control backends accepted by KeyVCSBackend.
const (
	VCSExec  = "exec"
	VCSGoGit = "go-git"
)

var defaultValues = map[string]string{
	KeyNPMClient:      branding.PackageManager(),
	KeyGitBinary:      "git",
	KeyVCSBackend:     VCSExec,
	KeyTemplateDir:    "",
	KeyMinNodeVersion: "8.0.0",
}

// Settings is the resolved configuration used by the create pipeline.
type Settings struct {
	NPMClient      string
	GitBinary      string
	VCSBackend     string
	TemplateDir    string
	MinNodeVersion string
}

// Dir returns the path to the config directory (~/.create-admin-app/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for key, value := range defaultValues {
		viper.SetDefault(key, value)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is one of the recognized settings.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Current returns the resolved settings. Load must have been called.
func Current() Settings {
	return Settings{
		NPMClient:      Get(KeyNPMClient),
		GitBinary:      Get(KeyGitBinary),
		VCSBackend:     Get(KeyVCSBackend),
		TemplateDir:    Get(KeyTemplateDir),
		MinNodeVersion: Get(KeyMinNodeVersion),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if key == KeyVCSBackend && value != VCSExec && value != VCSGoGit {
		return fmt.Errorf("%s must be %q or %q, got %q", KeyVCSBackend, VCSExec, VCSGoGit, value)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
