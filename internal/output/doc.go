// Package output provides styled terminal output and exit-code handling for
// the create-admin-app CLI.
package output
