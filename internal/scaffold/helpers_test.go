package scaffold

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/evel-pig/create-admin-app/internal/output"
	"github.com/evel-pig/create-admin-app/internal/runtime"
	"github.com/evel-pig/create-admin-app/internal/vcs"
)

// ─── Fake collaborators ────────────────────────────────────────────

type runCall struct {
	Dir  string
	Name string
	Args []string
}

func (c runCall) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// fakeRunner records invocations. failAt is the 1-based call that exits
// non-zero (0 = never). npm calls create node_modules like the real tool.
type fakeRunner struct {
	calls  []runCall
	failAt int
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) (*runtime.Result, error) {
	f.calls = append(f.calls, runCall{Dir: dir, Name: name, Args: args})
	if err := ctx.Err(); err != nil {
		return &runtime.Result{ExitCode: -1, Signal: "killed"}, nil
	}
	if name == "npm" {
		_ = os.MkdirAll(filepath.Join(dir, "node_modules", ".bin"), 0755)
	}
	if f.failAt == len(f.calls) {
		return &runtime.Result{ExitCode: 1}, nil
	}
	return &runtime.Result{}, nil
}

func (f *fakeRunner) commandLines() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

// brokenFS fails to open one path.
type brokenFS struct {
	fs.FS
	broken string
}

func (b brokenFS) Open(name string) (fs.File, error) {
	if name == b.broken {
		return nil, errors.New("simulated read failure")
	}
	return b.FS.Open(name)
}

func newTestPipeline(r *fakeRunner, tmpl fs.FS) (*Pipeline, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Pipeline{
		Template:  tmpl,
		VCS:       &vcs.Exec{Runner: r},
		Installer: &runtime.Installer{Runner: r, Command: "npm"},
		Printer:   output.NewPrinter(&buf, false),
	}, &buf
}

// ─── Filesystem helpers ────────────────────────────────────────────

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

func listDir(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("reading %s: %v", root, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s should not exist (stat err: %v)", path, err)
	}
}
