package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Lookup evaluates a JSONPath expression (e.g. "$.name") against a JSON
// document and returns the first match. ok is false when nothing matched.
func Lookup(data []byte, path string) (value any, ok bool, err error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, false, fmt.Errorf("parsing JSONPath %q: %w", path, err)
	}
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, false, fmt.Errorf("parsing JSON: %w", err)
	}
	matches := expr.Get(doc)
	if len(matches) == 0 {
		return nil, false, nil
	}
	return matches[0], true, nil
}

// Summary holds the identifying fields of an existing project's manifest.
type Summary struct {
	Name            string
	Version         string
	Dependencies    int
	DevDependencies int
}

// ReadSummary reads dir/package.json and extracts its identifying fields.
func ReadSummary(dir string) (*Summary, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	s := &Summary{}
	if v, ok, err := Lookup(data, "$.name"); err != nil {
		return nil, err
	} else if ok {
		s.Name, _ = v.(string)
	}
	if v, ok, _ := Lookup(data, "$.version"); ok {
		s.Version, _ = v.(string)
	}
	if v, ok, _ := Lookup(data, "$.dependencies"); ok {
		if m, isMap := v.(map[string]any); isMap {
			s.Dependencies = len(m)
		}
	}
	if v, ok, _ := Lookup(data, "$.devDependencies"); ok {
		if m, isMap := v.(map[string]any); isMap {
			s.DevDependencies = len(m)
		}
	}
	return s, nil
}
