package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/pkg/detector"
)

func newActivateCmd() *cobra.Command {
	var outcomes []string

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Create the detector, register outcomes and activate the trained model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cfg, err := newDetector(cmd)
			if err != nil {
				return err
			}
			outs := make([]detector.Outcome, 0, len(outcomes))
			for _, name := range outcomes {
				outs = append(outs, detector.Outcome{Name: name})
			}
			if err := d.Activate(cmd.Context(), outs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "model %s version %s activated\n",
				cfg.Project.ModelName, d.ModelVersion())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&outcomes, "outcome", []string{"review", "approve", "block"},
		"Outcome names to register (repeatable)")
	return cmd
}
