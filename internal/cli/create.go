package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evel-pig/create-admin-app/internal/branding"
	"github.com/evel-pig/create-admin-app/internal/config"
	"github.com/evel-pig/create-admin-app/internal/output"
	"github.com/evel-pig/create-admin-app/internal/runtime"
	"github.com/evel-pig/create-admin-app/internal/scaffold"
	"github.com/evel-pig/create-admin-app/internal/vcs"
)

// Swapped out in tests.
var (
	newPipeline = buildPipeline
	nodeVersion = func(ctx context.Context) (string, error) {
		return runtime.Probe(ctx, "node")
	}
)

func runCreate(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd)
	if len(args) == 0 {
		printMissingName(p)
		return output.NewReported("missing project directory", nil)
	}

	settings := config.Current()
	if err := checkNodeVersion(cmd.Context(), settings.MinNodeVersion, p); err != nil {
		return err
	}

	pl, err := newPipeline(settings, p)
	if err != nil {
		return output.NewFailureWithCause("configuring the create pipeline", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return output.NewFailureWithCause("resolving working directory", err)
	}

	_, err = pl.Create(cmd.Context(), workDir, args[0])
	return err
}

// buildPipeline wires the real subprocess runner, VCS backend and template
// source selected by settings.
func buildPipeline(s config.Settings, p *output.Printer) (*scaffold.Pipeline, error) {
	runner := &runtime.ExecRunner{}
	pl := &scaffold.Pipeline{
		Installer: &runtime.Installer{Runner: runner, Command: s.NPMClient},
		Printer:   p,
	}

	switch s.VCSBackend {
	case config.VCSExec, "":
		pl.VCS = &vcs.Exec{Runner: runner, Binary: s.GitBinary}
	case config.VCSGoGit:
		pl.VCS = vcs.GoGit{}
	default:
		return nil, fmt.Errorf("unknown %s %q", config.KeyVCSBackend, s.VCSBackend)
	}

	if s.TemplateDir != "" {
		tmpl, err := scaffold.TemplateFromDir(s.TemplateDir)
		if err != nil {
			return nil, err
		}
		pl.Template = tmpl
	}
	return pl, nil
}

func checkNodeVersion(ctx context.Context, minimum string, p *output.Printer) error {
	current, err := nodeVersion(ctx)
	if err != nil {
		p.Errorf("%s requires Node %s or higher, but node could not be run:\n", branding.CLIName(), minimum)
		p.Errorln("  " + err.Error())
		return output.NewReported("node is not available", err)
	}

	err = runtime.CheckMinimum(current, minimum)
	var versionErr *runtime.VersionError
	switch {
	case errors.As(err, &versionErr):
		p.Errorf("You are running Node %s.\n", versionErr.Current)
		p.Errorf("%s requires Node %s or higher. Please update your version of Node.\n", branding.CLIName(), versionErr.Minimum)
		return output.NewReported(err.Error(), err)
	case err != nil:
		return output.NewFailureWithCause("checking node version", err)
	}
	return nil
}

func printMissingName(p *output.Printer) {
	name := branding.CLIName()
	p.Errorln("Please specify the app name:")
	p.Errorf("  %s %s\n", p.Cmd(name), p.Path("<project-directory>"))
	p.Errorf("\n")
	p.Errorln("For example:")
	p.Errorf("  %s %s\n", p.Cmd(name), p.Path("my-admin-app"))
	p.Errorf("\n")
	p.Errorf("Run %s to see all options.\n", p.Cmd(name+" --help"))
}
