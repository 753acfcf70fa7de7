package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/evel-pig/create-admin-app/internal/output"
)

// AllowedPreexistingFiles may already exist in the target directory.
var AllowedPreexistingFiles = []string{
	".DS_Store",
	"Thumbs.db",
	".git",
	".gitignore",
	".idea",
	"README.md",
	"LICENSE",
	"web.iml",
	".hg",
	".hgignore",
	".hgcheck",
	".npmignore",
	"mkdocs.yml",
	"docs",
	".travis.yml",
	".gitlab-ci.yml",
	".gitattributes",
}

// ErrorLogPrefixes match debug logs left behind by a failed install,
// e.g. npm-debug.log, npm-debug.log.old, yarn-error.log.
var ErrorLogPrefixes = []string{
	"npm-debug.log",
	"yarn-error.log",
	"yarn-debug.log",
}

func isErrorLog(name string) bool {
	for _, prefix := range ErrorLogPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Conflicts returns the entries of root that are neither allowed nor
// leftover error logs, in directory order.
func Conflicts(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	var conflicts []string
	for _, e := range entries {
		name := e.Name()
		if slices.Contains(AllowedPreexistingFiles, name) || isErrorLog(name) {
			continue
		}
		conflicts = append(conflicts, name)
	}
	return conflicts, nil
}

// IsSafeToCreateProjectIn reports whether root can host a new project.
// Conflicting entries are listed and left alone. When there are none,
// leftover error logs from a previous run are removed before returning true.
func IsSafeToCreateProjectIn(root, displayName string, p *output.Printer) (bool, error) {
	conflicts, err := Conflicts(root)
	if err != nil {
		return false, err
	}

	p.Blank()
	if len(conflicts) > 0 {
		p.Printf("The directory %s contains files that could conflict:\n", p.Path(displayName))
		p.Blank()
		for _, name := range conflicts {
			p.Printf("  %s\n", name)
		}
		p.Blank()
		p.Println("Either try using a new directory name, or remove the files listed above.")
		return false, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", root, err)
	}
	for _, e := range entries {
		if !isErrorLog(e.Name()) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return false, fmt.Errorf("removing leftover log %s: %w", e.Name(), err)
		}
	}
	return true, nil
}
