// Package main is the entry point for the confy CLI.
package main

import (
	"errors"
	"os"

	"github.com/rust-cli/confy/cmd/confy/commands"
	confyerrors "github.com/rust-cli/confy/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *confyerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
