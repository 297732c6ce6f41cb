// Package main provides the entry point for the timeclerk CLI tool.
package main

import (
	"os"

	"github.com/shiftbooks/timeclerk/cmd/timeclerk/cmd"
	"github.com/shiftbooks/timeclerk/pkg/logging"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cmd.Execute(version, commit, date); err != nil {
		logging.Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
