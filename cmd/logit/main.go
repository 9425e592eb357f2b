// Package main provides the logit CLI.
package main

import (
	"os"

	"github.com/born-ml/logit/cmd/logit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
