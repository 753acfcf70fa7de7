package runtime

import "context"

// Installer invokes a package manager's install command.
type Installer struct {
	Runner  Runner
	Command string // e.g. "npm"
}

// InstallArgs returns the arguments for installing deps. An empty list
// installs whatever the manifest already declares.
func InstallArgs(deps []string, dev bool) []string {
	args := []string{"install"}
	if len(deps) == 0 {
		return args
	}
	if dev {
		args = append(args, "--save-dev")
	} else {
		args = append(args, "--save")
	}
	return append(args, deps...)
}

// Install runs the package manager in root and waits for it to finish.
func (i *Installer) Install(ctx context.Context, root string, deps []string, dev bool) error {
	return RunChecked(ctx, i.Runner, root, i.Command, InstallArgs(deps, dev)...)
}
