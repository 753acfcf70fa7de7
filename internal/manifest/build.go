package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Override mutates a manifest. Overrides are applied in slice order, so a
// later override wins over an earlier one for any field both touch.
type Override struct {
	Name  string
	Apply func(*PackageJSON)
}

// Overrides is the fixed precedence list applied on top of Base:
// scripts, then pre-commit lint config, then test-runner config.
var Overrides = []Override{
	{Name: "scripts", Apply: applyScripts},
	{Name: "lint-staged", Apply: applyLintStaged},
	{Name: "jest", Apply: applyJest},
}

// Base returns the manifest fields derived from the project name alone.
func Base(name string) *PackageJSON {
	return &PackageJSON{
		Name:    name,
		Version: "1.0.0",
		Private: true,
	}
}

// Build returns Base(name) with every override applied in order.
func Build(name string) *PackageJSON {
	p := Base(name)
	for _, o := range Overrides {
		o.Apply(p)
	}
	return p
}

// Marshal renders the manifest with two-space indentation and a trailing newline.
func Marshal(p *PackageJSON) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return append(data, '\n'), nil
}

// Write renders p into root/package.json.
func Write(root string, p *PackageJSON) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func applyScripts(p *PackageJSON) {
	p.Scripts = Ordered[string]{
		{"start", "epig dev"},
		{"build", "epig build"},
		{"build:analyze", "ANALYZE=true epig build"},
		{"precommit", "lint-staged && npm run tsc"},
		{"lint", "tslint -c tslint.json --project ./"},
		{"test", "jest"},
		{"tools", "epig-admin-tools"},
		{"tsc", "rm -rf tslib && tsc"},
	}
}

func applyLintStaged(p *PackageJSON) {
	p.LintStaged = Ordered[[]string]{
		{"src/**/*.tsx", []string{"tslint -c tslint.json"}},
		{"src/**/*.ts", []string{"tslint -c tslint.json"}},
	}
}

func applyJest(p *PackageJSON) {
	p.JestConfig = JestConfig{
		Transform: Ordered[string]{
			{`^.+\.tsx?$`, "<rootDir>/node_modules/ts-jest/preprocessor.js"},
			{`^.+\.jsx?$`, "<rootDir>/node_modules/babel-jest"},
		},
		TestRegex:            `(/__tests__/.*|\.(test|spec))\.(ts|tsx|js)$`,
		ModuleFileExtensions: []string{"ts", "tsx", "js", "jsx"},
		ModuleNameMapper: Ordered[string]{
			{`\.(css|less)$`, "identity-obj-proxy"},
		},
		ModuleDirectories:   []string{"node_modules"},
		SnapshotSerializers: []string{"enzyme-to-json/serializer"},
	}
}
