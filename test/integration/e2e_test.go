//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"

	"github.com/evel-pig/create-admin-app/internal/manifest"
	"github.com/evel-pig/create-admin-app/internal/scaffold"
	"github.com/evel-pig/create-admin-app/internal/vcs"
)

// TestFullFlowCreate runs the whole create flow against stub binaries:
// manifest -> template -> patch -> git init -> three installs.
func TestFullFlowCreate(t *testing.T) {
	env := setupTestEnv(t)
	var out bytes.Buffer
	pl := newPipeline(env, nil, &out)

	project, err := pl.Create(context.Background(), env.WorkDir, "my-admin-app")
	if err != nil {
		t.Fatalf("Create: %v\n%s", err, out.String())
	}

	root := filepath.Join(env.WorkDir, "my-admin-app")
	if project.Root != root {
		t.Errorf("project.Root = %q, want %q", project.Root, root)
	}

	// Step 1: Manifest and patched entry config carry the name.
	assertFileContains(t, filepath.Join(root, "package.json"), `"name": "my-admin-app"`)
	assertFileContains(t, filepath.Join(root, "src", "entry.config.ts"), "my-admin-app")
	summary, err := manifest.ReadSummary(root)
	if err != nil {
		t.Fatalf("ReadSummary: %v", err)
	}
	if summary.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", summary.Version)
	}

	// Step 2: Every template entry was copied.
	for _, name := range scaffold.TemplateEntries {
		assertFileExists(t, filepath.Join(root, name))
	}
	assertDirExists(t, filepath.Join(root, "src", "containers"))
	assertDirExists(t, filepath.Join(root, "node_modules"))

	// Step 3: git ran first, then the three installs, all inside root.
	calls := readCalls(t, env)
	if len(calls) != 4 {
		t.Fatalf("got %d stub calls, want 4: %v", len(calls), calls)
	}
	want := []string{
		"git init",
		"npm install --save " + strings.Join(scaffold.Dependencies, " "),
		"npm install --save-dev " + strings.Join(scaffold.DevDependencies, " "),
		"npm install --save ./src/util ./src/models ./src/components",
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}

	if !strings.Contains(out.String(), "cd my-admin-app") {
		t.Errorf("success message should suggest cd my-admin-app:\n%s", out.String())
	}
}

// TestFullFlowGoGit creates the repository in-process instead of running git.
func TestFullFlowGoGit(t *testing.T) {
	env := setupTestEnv(t)
	pl := newPipeline(env, vcs.GoGit{}, io.Discard)

	project, err := pl.Create(context.Background(), env.WorkDir, "admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := git.PlainOpen(project.Root); err != nil {
		t.Errorf("PlainOpen(%s): %v", project.Root, err)
	}
	for _, call := range readCalls(t, env) {
		if strings.HasPrefix(call, "git ") {
			t.Errorf("git binary should not run with the go-git backend: %q", call)
		}
	}
}

// TestFullFlowInstallFailureRollsBack fails the dev-dependency install and
// checks that only generated files are removed.
func TestFullFlowInstallFailureRollsBack(t *testing.T) {
	env := setupTestEnv(t)
	writeStub(t, env.BinDir, "npm", `echo "npm $*" >> "$STUB_LOG"
mkdir -p node_modules
case "$*" in *--save-dev*) exit 1 ;; esac`)

	root := filepath.Join(env.WorkDir, "my-admin-app")
	writeFile(t, filepath.Join(root, "LICENSE"), "MIT\n")

	var out bytes.Buffer
	_, err := newPipeline(env, nil, &out).Create(context.Background(), env.WorkDir, "my-admin-app")
	if err == nil {
		t.Fatal("expected Create to fail")
	}

	var stageErr *scaffold.StageError
	if !errors.As(err, &stageErr) || stageErr.Stage != scaffold.StageInstall {
		t.Fatalf("error = %v, want install StageError", err)
	}

	assertFileExists(t, filepath.Join(root, "LICENSE"))
	assertFileNotExists(t, filepath.Join(root, "package.json"))
	assertFileNotExists(t, filepath.Join(root, "node_modules"))
	assertFileNotExists(t, filepath.Join(root, "src"))
	if !strings.Contains(out.String(), "has failed.") {
		t.Errorf("output should name the failing command:\n%s", out.String())
	}
}

// TestFullFlowInterruptedInstall cancels a hanging install and expects the
// killed process to trigger rollback.
func TestFullFlowInterruptedInstall(t *testing.T) {
	env := setupTestEnv(t)
	writeStub(t, env.BinDir, "npm", `mkdir -p node_modules
exec sleep 30`)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := newPipeline(env, nil, io.Discard).Create(ctx, env.WorkDir, "my-admin-app")
	if err == nil {
		t.Fatal("expected Create to fail after cancellation")
	}
	assertFileNotExists(t, filepath.Join(env.WorkDir, "my-admin-app"))
}

// TestFullFlowTemplateDir uses an on-disk template instead of the embedded one.
func TestFullFlowTemplateDir(t *testing.T) {
	env := setupTestEnv(t)
	tmplDir := t.TempDir()
	writeFile(t, filepath.Join(tmplDir, "README.md"), "# custom\n")
	writeFile(t, filepath.Join(tmplDir, "src", "entry.config.ts"), "export default { name: '<%= appName %>' };\n")

	tmpl, err := scaffold.TemplateFromDir(tmplDir)
	if err != nil {
		t.Fatalf("TemplateFromDir: %v", err)
	}
	pl := newPipeline(env, nil, io.Discard)
	pl.Template = tmpl

	project, err := pl.Create(context.Background(), env.WorkDir, "custom-admin")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	assertFileContains(t, filepath.Join(project.Root, "README.md"), "# custom")
	assertFileContains(t, filepath.Join(project.Root, "src", "entry.config.ts"), "name: 'custom-admin'")
	assertFileNotExists(t, filepath.Join(project.Root, "tsconfig.json"))
}
