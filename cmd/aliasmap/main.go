package main

import (
	"os"

	"github.com/homier/aliasmap/internal/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(Version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
