package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	// Flags, config and subcommand dispatch live in the cli package.
	os.Exit(cli.Main())
}
