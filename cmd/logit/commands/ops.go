package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOpsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List registered operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, def := range a.registry.Ops() {
				types := make([]string, len(def.Types))
				for i, t := range def.Types {
					types[i] = t.String()
				}
				fmt.Fprintf(out, "%s(%s) -> %s\n", def.Name, strings.Join(def.Inputs, ", "), strings.Join(def.Outputs, ", "))
				fmt.Fprintf(out, "  types: %s\n", strings.Join(types, ", "))
				if def.Gradient != "" {
					fmt.Fprintf(out, "  gradient: %s\n", def.Gradient)
				}
				if def.Doc != "" {
					fmt.Fprintf(out, "  %s\n", def.Doc)
				}
			}
			return nil
		},
	}
}
