// Package main provides the lintpass CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/lintpass/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
