package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/evel-pig/create-admin-app/internal/output"
)

// Cleanup removes the entries of root whose names appear in known, then
// removes root itself if nothing else is left. Entries that are not in
// known are never touched.
func Cleanup(root, displayName string, known []string, p *output.Printer) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading %s: %w", root, err)
	}

	var errs []error
	for _, e := range entries {
		if !slices.Contains(known, e.Name()) {
			continue
		}
		p.Printf("Deleting generated file... %s\n", p.Cmd(e.Name()))
		if err := os.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", e.Name(), err))
		}
	}

	remaining, err := os.ReadDir(root)
	if err != nil {
		errs = append(errs, fmt.Errorf("reading %s: %w", root, err))
	} else if len(remaining) == 0 {
		parent := filepath.Dir(root)
		p.Printf("Deleting %s from %s\n", p.Cmd(displayName+"/"), p.Cmd(parent))
		if err := os.Remove(root); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", root, err))
		}
	}

	p.Println("Done.")
	return errors.Join(errs...)
}
