// Package main is the entry point for the jarvisedu CLI.
//
// Usage:
//
//	jarvisedu [flags] <command> [subcommand] [args]
//
// Commands:
//
//	chat         - Interactive assistant session
//	assignments  - Manage assignments (list, add, complete)
//	plan         - Manage study plans (create, today, show, done)
//	brief        - Show the daily brief
//	focus        - Run a focus-mode timer
//	version      - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/jantorestrimer2011-eng/JARIVSedu/cmd/jarvisedu/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
