// Package main is the entry point for the package-audit CLI.
package main

import (
	"os"

	"package-audit/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
