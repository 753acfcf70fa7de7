package main

import (
	"os"

	"github.com/evel-pig/create-admin-app/internal/cli"
	"github.com/evel-pig/create-admin-app/internal/output"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(output.GetExitCode(cli.Execute(version, commit, date)))
}
