// Package cli implements the fraudkit command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/internal/config"
	"github.com/fraudkit/fraudkit/internal/redact"
	"github.com/fraudkit/fraudkit/pkg/detector"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", redact.Secrets(err.Error()))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "fraudkit",
		Short:         "Amazon Fraud Detector client toolkit",
		Long:          "Profile tabular training data and drive Amazon Fraud Detector setup, training, deployment and prediction.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (env vars override it)")

	rootCmd.AddCommand(
		newProfileCmd(),
		newTrainCmd(),
		newStatusCmd(),
		newActivateCmd(),
		newDeployCmd(),
		newPredictCmd(),
		newMetricsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// loadConfig reads the --config file plus environment and installs the
// slog default logger at the configured level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return cfg, nil
}

// newDetector builds the remote client from the loaded configuration.
func newDetector(cmd *cobra.Command) (*detector.Detector, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	api, err := cfg.FraudDetectorClient(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	d, err := detector.New(api, detector.Config{
		EntityType:      cfg.Project.EntityType,
		EventType:       cfg.Project.EventType,
		ModelName:       cfg.Project.ModelName,
		ModelVersion:    cfg.Project.ModelVersion,
		ModelType:       types.ModelTypeEnum(cfg.Project.ModelType),
		DetectorName:    cfg.Project.DetectorName,
		DetectorVersion: cfg.Project.DetectorVersion,
	})
	if err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}
