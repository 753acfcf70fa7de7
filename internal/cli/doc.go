// Package cli defines the Cobra command tree for the create-admin-app CLI.
// The root command creates a project; version, doctor and config are
// registered from their own files. Commands only handle flags and I/O and
// delegate the work to the scaffold, runtime and config packages.
package cli
