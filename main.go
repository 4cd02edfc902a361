package main

import (
	"os"

	"github.com/thenoetrevino/asta/cmd"
	"github.com/thenoetrevino/asta/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
