package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/born-ml/logit/internal/operators"
)

func newForwardCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forward [flags] [--] [p...]",
		Short: "Print log(p / (1 - p)) for each value",
		Long: `Print log(p / (1 - p)) for each value.

Flags must come before the first value; everything after it is read as a
value, so negative numbers need no quoting. Put -- before the values when
the first one is negative.`,
		Example: `  logit forward 0.1 0.5 0.9
  logit forward --dtype float32 -- -0.5 0.5
  echo "0.25,0.75" | logit forward --dtype float32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			x, err := newRaw(a.cfg.DataType(), values)
			if err != nil {
				return err
			}
			y, err := a.registry.Execute(operators.LogitOp, x)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"op": operators.LogitOp, "n": y.NumElements()}).Debug("computed")
			return formatRaw(cmd.OutOrStdout(), y)
		},
	}

	// Stop flag parsing at the first value so "-1" is not read as a shorthand.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
