package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/evel-pig/create-admin-app/internal/branding"
	"github.com/evel-pig/create-admin-app/internal/manifest"
	"github.com/evel-pig/create-admin-app/internal/output"
	"github.com/evel-pig/create-admin-app/internal/runtime"
	"github.com/evel-pig/create-admin-app/internal/vcs"
)

// Pipeline creates projects. All collaborators are injected so the whole
// flow can run against fakes.
type Pipeline struct {
	Template  fs.FS
	VCS       vcs.Initializer
	Installer *runtime.Installer
	Printer   *output.Printer
}

// Project describes a successfully created project.
type Project struct {
	Root string
	Name string
}

// writeManifest is swapped in tests.
var writeManifest = manifest.Write

type installStep struct {
	deps []string
	dev  bool
}

var installSteps = []installStep{
	{deps: Dependencies},
	{deps: DevDependencies, dev: true},
	{deps: BuiltInDependencies},
}

func (pl *Pipeline) printer() *output.Printer {
	if pl.Printer == nil {
		return output.Discard()
	}
	return pl.Printer
}

// packageManager is the client named in the next-step hints.
func (pl *Pipeline) packageManager() string {
	if pl.Installer != nil && pl.Installer.Command != "" {
		return pl.Installer.Command
	}
	return branding.PackageManager()
}

func (pl *Pipeline) template() fs.FS {
	if pl.Template == nil {
		return EmbeddedTemplate()
	}
	return pl.Template
}

// Create resolves target against workDir, validates the project name,
// checks the directory and runs the scaffold stages. Every failure is
// printed before returning, so the returned error is an *output.ExitError
// marked as reported.
func (pl *Pipeline) Create(ctx context.Context, workDir, target string) (*Project, error) {
	p := pl.printer()

	root := target
	if !filepath.IsAbs(root) {
		root = filepath.Join(workDir, target)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, output.NewFailureWithCause("resolving project directory", err)
	}
	name := filepath.Base(root)

	if err := ValidateName(name); err != nil {
		reportNameError(p, err)
		return nil, output.NewReported(err.Error(), err)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, output.NewFailureWithCause(fmt.Sprintf("creating %s", root), err)
	}

	safe, err := IsSafeToCreateProjectIn(root, target, p)
	if err != nil {
		return nil, output.NewFailureWithCause("checking project directory", err)
	}
	if !safe {
		return nil, output.NewReported(fmt.Sprintf("directory %s contains conflicting files", target), nil)
	}

	p.Printf("Creating a new %s in %s.\n", branding.DisplayName(), p.Path(root))
	p.Blank()

	if err := pl.Scaffold(ctx, root, name); err != nil {
		return nil, output.NewReported("installation aborted", err)
	}

	PrintSuccess(p, root, name, workDir, pl.packageManager())
	return &Project{Root: root, Name: name}, nil
}

// Scaffold runs the stages in an existing, checked root. On failure it rolls
// back the stage's known files and returns a *StageError.
func (pl *Pipeline) Scaffold(ctx context.Context, root, name string) error {
	p := pl.printer()

	pkg := manifest.Build(name)
	if result, err := manifest.ValidatePackage(pkg); err != nil {
		p.Warn(fmt.Sprintf("Could not validate %s: %v", manifest.FileName, err))
	} else if !result.Valid {
		for _, issue := range result.Issues {
			p.Warn(fmt.Sprintf("%s: %s", manifest.FileName, issue))
		}
	}
	if err := writeManifest(root, pkg); err != nil {
		p.Blank()
		p.Printf("Writing %s has failed\n", manifest.FileName)
		p.Println(err.Error())
		return pl.rollback(root, name, StageManifest, err)
	}

	p.Println("Copy files from template")
	if err := CopyTemplate(pl.template(), root); err != nil {
		p.Blank()
		p.Println("Copy files has failed")
		p.Println(err.Error())
		return pl.rollback(root, name, StageCopy, err)
	}
	ensureContainersDir(root)
	if err := WriteIgnoreFile(root); err != nil {
		p.Blank()
		p.Println("Copy files has failed")
		p.Println(err.Error())
		return pl.rollback(root, name, StageCopy, err)
	}
	p.Println("Copy files complete")
	p.Blank()

	if err := PatchEntryConfig(root, name); err != nil {
		p.Blank()
		p.Printf("Generate %s has failed\n", filepath.Base(EntryConfigPath))
		p.Println(err.Error())
		return pl.rollback(root, name, StagePatch, err)
	}

	p.Println("Installing packages. This might take a couple of minutes.")
	// git init has to come first: the pre-commit hook installed with the
	// dev dependencies needs an existing repository.
	if err := pl.install(ctx, root); err != nil {
		p.Blank()
		p.Println("Aborting installation.")
		var cmdErr *runtime.CommandError
		if errors.As(err, &cmdErr) {
			p.Printf("  %s has failed.\n", p.Cmd(cmdErr.CommandLine()))
		} else {
			p.Errorln("Unexpected error. Please report it as a bug:")
			p.Println(err.Error())
		}
		p.Blank()
		return pl.rollback(root, name, StageInstall, err)
	}
	return nil
}

func (pl *Pipeline) install(ctx context.Context, root string) error {
	if err := pl.VCS.Init(ctx, root); err != nil {
		return err
	}
	for _, step := range installSteps {
		if err := pl.Installer.Install(ctx, root, step.deps, step.dev); err != nil {
			return err
		}
	}
	return nil
}

func (pl *Pipeline) rollback(root, name string, stage Stage, cause error) error {
	if err := Cleanup(root, name, KnownFiles(stage), pl.printer()); err != nil {
		pl.printer().Warn(fmt.Sprintf("Cleanup incomplete: %v", err))
		cause = errors.Join(cause, err)
	}
	return &StageError{Stage: stage, Err: cause}
}

func reportNameError(p *output.Printer, err error) {
	var nameErr *NameError
	if !errors.As(err, &nameErr) {
		p.Errorln(err.Error())
		return
	}

	if !nameErr.Reserved {
		p.Errorf("Could not create a project called %s because of npm naming restrictions:\n",
			p.Red(fmt.Sprintf("%q", nameErr.Name)))
		for _, reason := range nameErr.Reasons {
			p.Errorln("  *  " + reason)
		}
		return
	}

	p.Errorln(fmt.Sprintf("We cannot create a project called %s because a dependency with the same name exists.", nameErr.Name))
	p.Errorln("Due to the way npm works, the following names are not allowed:")
	p.Errorf("\n")
	for _, reserved := range nameErr.Reasons {
		p.Errorf("%s\n", p.Cmd("  "+reserved))
	}
	p.Errorf("\n")
	p.Errorln("Please choose a different project name.")
}

// PrintSuccess prints the next-step commands for a created project, run
// with the package manager pm. The cd hint is the bare name when root is a
// direct child of workDir.
func PrintSuccess(p *output.Printer, root, name, workDir, pm string) {
	cdPath := root
	if workDir != "" && filepath.Join(workDir, name) == root {
		cdPath = name
	}

	p.Blank()
	p.Success(fmt.Sprintf("Success! Created %s at %s", name, root))
	p.Println("Inside that directory, you can run several commands:")
	p.Blank()
	p.Println(p.Cmd("  " + pm + " start"))
	p.Println("    Starts the development server.")
	p.Blank()
	p.Println(p.Cmd("  " + pm + " run build"))
	p.Println("    Bundles the app into static files for production.")
	p.Blank()
	p.Println(p.Cmd("  " + pm + " test"))
	p.Println("    Starts the test runner.")
	p.Blank()
	p.Println("We suggest that you begin by typing:")
	p.Blank()
	p.Printf("  %s %s\n", p.Cmd("cd"), cdPath)
	p.Printf("  %s\n", p.Cmd(pm+" start"))
	p.Blank()
	p.Println("Happy hacking!")
}
