package scaffold

import "github.com/evel-pig/create-admin-app/internal/manifest"

// Stage identifies how far the pipeline got before failing.
type Stage int

const (
	StageManifest Stage = iota // writing package.json
	StageCopy                  // copying the template tree
	StagePatch                 // patching src/entry.config.ts
	StageInstall               // git init and package installs
)

// DependencyCacheDir is created by the package manager during installs.
const DependencyCacheDir = "node_modules"

func (s Stage) String() string {
	switch s {
	case StageManifest:
		return "manifest"
	case StageCopy:
		return "copy"
	case StagePatch:
		return "patch"
	case StageInstall:
		return "install"
	default:
		return "unknown"
	}
}

// KnownFiles returns the top-level names the pipeline may have created by
// the time stage fails. Each later stage's set contains the earlier ones.
func KnownFiles(s Stage) []string {
	switch s {
	case StageManifest:
		return []string{manifest.FileName}
	case StageCopy, StagePatch:
		return append(append([]string(nil), TemplateEntries...), manifest.FileName)
	case StageInstall:
		return append(append([]string(nil), TemplateEntries...), manifest.FileName, DependencyCacheDir)
	default:
		return nil
	}
}

// StageError is returned by the pipeline after rollback has run.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return e.Stage.String() + " stage failed: " + e.Err.Error()
}

// Unwrap returns the stage's underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
