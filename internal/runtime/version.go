package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Probe runs "<binary> --version" and returns its trimmed standard output.
func Probe(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", binary, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// VersionError reports a runtime older than the supported minimum.
type VersionError struct {
	Current string
	Minimum string
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("running version %s, but %s or higher is required", e.Current, e.Minimum)
}

// CheckMinimum returns a *VersionError when current is older than minimum.
func CheckMinimum(current, minimum string) error {
	cv, err := ParseVersion(current)
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", current, err)
	}
	constraint, err := semver.NewConstraint(">= " + strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	if !constraint.Check(cv) {
		return &VersionError{Current: cv.String(), Minimum: minimum}
	}
	return nil
}
