package cli

import (
	"context"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/evel-pig/create-admin-app/internal/branding"
	"github.com/evel-pig/create-admin-app/internal/config"
	"github.com/evel-pig/create-admin-app/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-directory>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new admin project: it copies the bundled template,
writes package.json, initializes a git repository and installs the dependencies.
Anything the run created is removed again when a step fails.`,
	Example:       "  " + branding.CLIName() + " my-admin-app",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the command context, so a running install is killed and
// rolled back.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
		fang.WithErrorHandler(handleError),
	)
}

// handleError renders errors that the failing command has not printed itself.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.IsReported(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, output.IsTTY(out)).WithStderr(cmd.ErrOrStderr())
}
