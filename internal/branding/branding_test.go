package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "create-admin-app" {
		t.Errorf("CLIName() = %q, want %q", got, "create-admin-app")
	}
	if got := HomeDir(); got != ".create-admin-app" {
		t.Errorf("HomeDir() = %q, want %q", got, ".create-admin-app")
	}
	if got := PackageManager(); got != "npm" {
		t.Errorf("PackageManager() = %q, want %q", got, "npm")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("npm_client"); got != "CREATE_ADMIN_APP_NPM_CLIENT" {
		t.Errorf("EnvVar() = %q, want %q", got, "CREATE_ADMIN_APP_NPM_CLIENT")
	}
}
