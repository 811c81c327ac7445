package cli

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/pkg/detector"
	"github.com/fraudkit/fraudkit/pkg/metrics"
)

func newMetricsCmd() *cobra.Command {
	var bestOnly bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print training metrics for the configured model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			api, err := cfg.FraudDetectorClient(cmd.Context())
			if err != nil {
				return err
			}

			modelVersion := cfg.Project.ModelVersion
			if modelVersion == "" {
				modelVersion = "1.00"
			}
			mc := metrics.New(api,
				cfg.Project.ModelName,
				types.ModelTypeEnum(cfg.Project.ModelType),
				detector.NormalizeModelVersion(modelVersion))
			tm, err := mc.TrainingMetrics(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if bestOnly {
				best, err := tm.BestF1()
				if err != nil {
					return err
				}
				return enc.Encode(best)
			}
			return enc.Encode(tm)
		},
	}

	cmd.Flags().BoolVar(&bestOnly, "best", false, "Print only the threshold with the best F1 score")
	return cmd
}
