package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/born-ml/logit/internal/operators"
)

func newGradCommand(a *app) *cobra.Command {
	var xFlag, dzdyFlag string

	cmd := &cobra.Command{
		Use:     "grad",
		Short:   "Print dz_dy / (x * (1 - x)) for each pair of values",
		Example: `  logit grad --x 0.5,0.25 --dz-dy 1,3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			xs, err := parseValues(xFlag)
			if err != nil {
				return err
			}
			gs, err := parseValues(dzdyFlag)
			if err != nil {
				return err
			}

			dtype := a.cfg.DataType()
			x, err := newRaw(dtype, xs)
			if err != nil {
				return err
			}
			dzdy, err := newRaw(dtype, gs)
			if err != nil {
				return err
			}

			dzdx, err := a.registry.Execute(operators.LogitGradOp, x, dzdy)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"op": operators.LogitGradOp, "n": dzdx.NumElements()}).Debug("computed")
			return formatRaw(cmd.OutOrStdout(), dzdx)
		},
	}

	cmd.Flags().StringVar(&xFlag, "x", "", "forward inputs, comma separated")
	cmd.Flags().StringVar(&dzdyFlag, "dz-dy", "", "upstream gradients, comma separated")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("dz-dy")
	return cmd
}
