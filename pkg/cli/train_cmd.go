package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/internal/uploader"
	"github.com/fraudkit/fraudkit/pkg/detector"
	"github.com/fraudkit/fraudkit/pkg/profile"
)

func newTrainCmd() *cobra.Command {
	var (
		inputPath       string
		dataLocation    string
		labelColumn     string
		timestampColumn string
		wait            bool
		pollInterval    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Profile a training CSV, upload it and train a model version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			d, cfg, err := newDetector(cmd)
			if err != nil {
				return err
			}
			if cfg.DataAccessRoleARN == "" {
				return fmt.Errorf("data_access_role_arn is required to train")
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()

			sample, err := profile.ReadSampleCSV(f)
			if err != nil {
				return err
			}
			schema, err := profile.New(profile.WithTimestampColumn(timestampColumn)).Profile(sample, labelColumn)
			if err != nil {
				return err
			}
			inputs, err := schema.DetectorInputs()
			if err != nil {
				return err
			}

			if dataLocation == "" {
				if cfg.S3Bucket == "" {
					return fmt.Errorf("s3_bucket is required when --data-location is not set")
				}
				s3c, err := cfg.S3Client(ctx)
				if err != nil {
					return err
				}
				up, err := uploader.New(s3c, cfg.S3Bucket)
				if err != nil {
					return err
				}
				if _, err := f.Seek(0, 0); err != nil {
					return err
				}
				key := fmt.Sprintf("training/%s/%s", cfg.Project.ModelName, filepath.Base(inputPath))
				dataLocation, err = up.UploadTrainingData(ctx, key, f)
				if err != nil {
					return err
				}
			}

			status, err := d.Fit(ctx, detector.FitInput{
				Inputs:            inputs,
				DataLocation:      dataLocation,
				DataAccessRoleARN: cfg.DataAccessRoleARN,
				Wait:              wait,
				PollInterval:      pollInterval,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "model %s version %s: %s\n",
				cfg.Project.ModelName, d.ModelVersion(), status)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Training data CSV path")
	cmd.Flags().StringVar(&dataLocation, "data-location", "", "Existing s3:// URI of the training CSV (skips upload)")
	cmd.Flags().StringVar(&labelColumn, "label", "", "Label column name (auto-detected when empty)")
	cmd.Flags().StringVar(&timestampColumn, "timestamp", "EVENT_TIMESTAMP", "Event timestamp column name")
	cmd.Flags().BoolVar(&wait, "wait", false, "Block until training finishes")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", time.Minute, "Status poll interval while waiting")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
