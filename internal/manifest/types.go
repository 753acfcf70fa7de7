package manifest

// FileName is the manifest file written into the project root.
const FileName = "package.json"

// PackageJSON is the typed manifest of a generated project.
//
// The test-runner settings are embedded so they serialize at the top level
// of the document, next to name and scripts.
type PackageJSON struct {
	Name       string            `json:"name"`
	Version    string            `json:"version"`
	Private    bool              `json:"private"`
	Scripts    Ordered[string]   `json:"scripts,omitempty"`
	LintStaged Ordered[[]string] `json:"lint-staged,omitempty"`
	JestConfig
}

// JestConfig holds the test-runner settings merged into the manifest.
type JestConfig struct {
	Transform            Ordered[string] `json:"transform,omitempty"`
	TestRegex            string          `json:"testRegex,omitempty"`
	ModuleFileExtensions []string        `json:"moduleFileExtensions,omitempty"`
	ModuleNameMapper     Ordered[string] `json:"moduleNameMapper,omitempty"`
	ModuleDirectories    []string        `json:"moduleDirectories,omitempty"`
	SnapshotSerializers  []string        `json:"snapshotSerializers,omitempty"`
}
