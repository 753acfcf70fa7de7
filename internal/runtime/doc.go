// Package runtime spawns the external programs the scaffolder depends on.
// Runner launches a binary with inherited standard streams and reports its
// exit status; Installer builds package-manager install invocations on top of
// it; Probe and CheckMinimum implement the Node version preflight.
package runtime
