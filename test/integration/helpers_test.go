//go:build integration

package integration_test

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/evel-pig/create-admin-app/internal/output"
	procrt "github.com/evel-pig/create-admin-app/internal/runtime"
	"github.com/evel-pig/create-admin-app/internal/scaffold"
	"github.com/evel-pig/create-admin-app/internal/vcs"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, so nothing reads the real user config
	WorkDir string // where projects get created
	BinDir  string // stub npm and git scripts
	LogFile string // every stub invocation is appended here
}

// setupTestEnv creates isolated temp directories and stub binaries that log
// their arguments instead of touching the network.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries are shell scripts")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("STUB_LOG", env.LogFile)

	writeStub(t, env.BinDir, "git", `echo "git $*" >> "$STUB_LOG"`)
	writeStub(t, env.BinDir, "npm", `echo "npm $*" >> "$STUB_LOG"
mkdir -p node_modules/.bin`)

	return env
}

// writeStub writes an executable shell script named name into dir.
func writeStub(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", path, err)
	}
}

// newPipeline wires the real subprocess runner to the stub binaries.
// A nil initializer selects the stub git.
func newPipeline(env *testEnv, initializer vcs.Initializer, w io.Writer) *scaffold.Pipeline {
	runner := &procrt.ExecRunner{Stdin: strings.NewReader(""), Stdout: io.Discard, Stderr: io.Discard}
	if initializer == nil {
		initializer = &vcs.Exec{Runner: runner, Binary: filepath.Join(env.BinDir, "git")}
	}
	return &scaffold.Pipeline{
		VCS:       initializer,
		Installer: &procrt.Installer{Runner: runner, Command: filepath.Join(env.BinDir, "npm")},
		Printer:   output.NewPrinter(w, false),
	}
}

// readCalls returns the logged stub invocations, one per line.
func readCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", env.LogFile, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
