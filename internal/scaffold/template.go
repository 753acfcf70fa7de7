package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:template
var embeddedTemplate embed.FS

// TemplateEntries are the top-level names the template tree produces in the
// project root.
var TemplateEntries = []string{
	"public",
	"server",
	"src",
	".epigrc.js",
	".gitignore",
	".gitlab-ci.yml",
	"docker-compose.yml",
	"Dockerfile",
	"pm2.json",
	"proxy.config.js",
	"README.md",
	"tsconfig.json",
	"tslint.json",
}

// excludedNames are never copied out of a template directory.
var excludedNames = map[string]bool{
	"node_modules": true,
	".DS_Store":    true,
}

// EmbeddedTemplate returns the template tree compiled into the binary.
func EmbeddedTemplate() fs.FS {
	sub, err := fs.Sub(embeddedTemplate, "template")
	if err != nil {
		panic(fmt.Sprintf("embedded template: %v", err))
	}
	return sub
}

// TemplateFromDir returns an on-disk template tree, for a template_dir
// setting that replaces the embedded one.
func TemplateFromDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// CopyTemplate copies every file of src into dst, creating directories as
// needed and overwriting files that already exist.
func CopyTemplate(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != "." && excludedNames[d.Name()] {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			return nil
		}
		// Skip symlinks and other special files.
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(src, path, target)
	})
}

// copyFile copies a single file, keeping the executable bit when the source has one.
func copyFile(src fs.FS, path, target string) error {
	data, err := fs.ReadFile(src, path)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", path, err)
	}

	mode := os.FileMode(0644)
	if info, err := fs.Stat(src, path); err == nil && info.Mode().Perm()&0111 != 0 {
		mode = 0755
	}

	if err := os.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
