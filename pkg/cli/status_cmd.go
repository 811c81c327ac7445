package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the training status of the configured model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cfg, err := newDetector(cmd)
			if err != nil {
				return err
			}
			status, err := d.ModelStatus(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "model %s version %s: %s\n",
				cfg.Project.ModelName, d.ModelVersion(), status)
			return nil
		},
	}
}
