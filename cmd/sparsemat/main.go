// Package main is the entry point for the sparsemat CLI application.
package main

import (
	"github.com/katalvlaran/sparsemat/cmd/sparsemat/cmd"
)

// Version information - set by build flags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Date = date
	cmd.Execute()
}
