package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/shrinkwrap/cmd/shrinkwrap"
)

func main() {
	rootCmd := shrinkwrap.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.NewStyle(pterm.FgRed).Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
