package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "logit %s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}
}
