package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IgnorePatterns are written to the generated .gitignore.
var IgnorePatterns = []string{
	"node_modules",
	"/dist",
	"/dll",
	".DS_Store",
	"coverage",
	".admin-tools",
	"tslib",
}

const (
	// EntryConfigPath is the template file carrying the app name placeholder.
	EntryConfigPath = "src/entry.config.ts"
	// Placeholder is replaced with the project name in EntryConfigPath.
	Placeholder = "<%= appName %>"
	// ContainersDir is created inside the copied tree.
	ContainersDir = "src/containers"
)

// WriteIgnoreFile replaces root/.gitignore with IgnorePatterns, CRLF separated.
func WriteIgnoreFile(root string) error {
	path := filepath.Join(root, ".gitignore")
	content := strings.Join(IgnorePatterns, "\r\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

// PatchEntryConfig replaces the first Placeholder in EntryConfigPath with name.
func PatchEntryConfig(root, name string) error {
	path := filepath.Join(root, filepath.FromSlash(EntryConfigPath))
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", EntryConfigPath, err)
	}

	patched := strings.Replace(string(content), Placeholder, name, 1)
	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", EntryConfigPath, err)
	}
	return nil
}

// ensureContainersDir creates ContainersDir. Failure is not fatal.
func ensureContainersDir(root string) {
	_ = os.MkdirAll(filepath.Join(root, filepath.FromSlash(ContainersDir)), 0755)
}
