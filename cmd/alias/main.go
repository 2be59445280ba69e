package main

import (
	"fmt"
	"os"

	"github.com/gomac/finder"
	"github.com/gomac/finder/internal/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version, finder.Host(), finder.Alias)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorColor(err))
		os.Exit(1)
	}
}
