// Package main provides the entry point for the sheetsmith CLI tool.
package main

import (
	"github.com/sheetsmith/sheetsmith/cmd/sheetsmith/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
