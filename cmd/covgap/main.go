package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/covgap/internal"
	"github.com/valter-silva-au/covgap/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	if _, err := app.NewApp("."); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing covgap: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
