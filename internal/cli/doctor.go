package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evel-pig/create-admin-app/internal/config"
	"github.com/evel-pig/create-admin-app/internal/manifest"
	"github.com/evel-pig/create-admin-app/internal/runtime"
)

var (
	checkRuntime  bool
	checkManifest string
)

// Swapped out in tests.
var lookPath = exec.LookPath

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node, the package manager and git are available")
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate the package.json of the project at the given directory")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools needed to create a project are available",
	Long: `Run diagnostic checks on the environment: the node, package manager and git
binaries, and the installed Node version against min_node_version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		settings := config.Current()

		// If no specific flag, run the runtime checks.
		runtimeCheck := checkRuntime || checkManifest == ""

		var failed bool
		if runtimeCheck {
			if !runRuntimeCheck(cmd.Context(), out, settings) {
				failed = true
			}
		}
		if checkManifest != "" {
			if err := runManifestCheck(out, checkManifest); err != nil {
				return err
			}
		}
		if failed {
			return fmt.Errorf("runtime check failed")
		}
		return nil
	},
}

// runRuntimeCheck reports each required binary and the Node version. It
// returns false when something needed for a create run is missing.
func runRuntimeCheck(ctx context.Context, out io.Writer, s config.Settings) bool {
	fmt.Fprintln(out, "Runtime check:")
	ok := checkBinary(out, "node")
	ok = checkBinary(out, s.NPMClient) && ok
	if s.VCSBackend == config.VCSGoGit {
		fmt.Fprintf(out, "  [INFO] %s not required (%s=%s)\n", s.GitBinary, config.KeyVCSBackend, config.VCSGoGit)
	} else {
		ok = checkBinary(out, s.GitBinary) && ok
	}

	fmt.Fprintln(out, "Node version check:")
	current, err := nodeVersion(ctx)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	if err := runtime.CheckMinimum(current, s.MinNodeVersion); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] node %s (>= %s)\n", current, s.MinNodeVersion)
	return ok
}

func checkBinary(out io.Writer, name string) bool {
	path, err := lookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
	return true
}

func runManifestCheck(out io.Writer, dir string) error {
	path := filepath.Join(dir, manifest.FileName)
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	// Validate against JSON Schema.
	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		summary, err := manifest.ReadSummary(dir)
		if err != nil {
			fmt.Fprintf(out, "  [ OK ] Valid %s\n", manifest.FileName)
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid %s: %s (v%s), %d dependencies, %d devDependencies\n",
			manifest.FileName, summary.Name, summary.Version, summary.Dependencies, summary.DevDependencies)
		return nil
	}

	// Report validation issues.
	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
