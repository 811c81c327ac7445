package detector

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"

	"github.com/fraudkit/fraudkit/pkg/profile"
)

// FitInput configures model-version training.
type FitInput struct {
	Inputs profile.DetectorInputs

	// DataLocation is the s3:// URI of the training CSV.
	DataLocation string
	// DataAccessRoleARN is the IAM role the service assumes to read it.
	DataAccessRoleARN string

	// DataSource defaults to EXTERNAL_EVENTS.
	DataSource types.TrainingDataSourceEnum

	// Wait blocks until training leaves TRAINING_IN_PROGRESS.
	Wait bool
	// PollInterval between status checks while waiting. Defaults to 60s.
	PollInterval time.Duration
}

// Fit sets up the project, creates a model version and optionally waits for
// training to finish. It returns the final training status.
func (d *Detector) Fit(ctx context.Context, in FitInput) (string, error) {
	if in.DataLocation == "" {
		return "", fmt.Errorf("detector: training data location is required")
	}
	if in.DataAccessRoleARN == "" {
		return "", fmt.Errorf("detector: data access role arn is required")
	}
	if in.DataSource == "" {
		in.DataSource = types.TrainingDataSourceEnumExternalEvents
	}
	if in.PollInterval <= 0 {
		in.PollInterval = time.Minute
	}

	if _, err := d.SetupProject(ctx, in.Inputs); err != nil {
		return "", err
	}

	d.log.Info("training model version",
		"model", d.cfg.ModelName, "version", d.cfg.ModelVersion, "dataLocation", in.DataLocation)
	out, err := d.api.CreateModelVersion(ctx, &frauddetector.CreateModelVersionInput{
		ModelId:            aws.String(d.cfg.ModelName),
		ModelType:          d.cfg.ModelType,
		TrainingDataSource: in.DataSource,
		TrainingDataSchema: &types.TrainingDataSchema{
			ModelVariables: in.Inputs.ModelVariables,
			LabelSchema: &types.LabelSchema{
				LabelMapper: in.Inputs.LabelMapper,
			},
		},
		ExternalEventsDetail: &types.ExternalEventsDetail{
			DataLocation:      aws.String(in.DataLocation),
			DataAccessRoleArn: aws.String(in.DataAccessRoleARN),
		},
	})
	if err != nil {
		return "", fmt.Errorf("detector: create model version: %w", err)
	}

	status := aws.ToString(out.Status)
	if !in.Wait {
		return status, nil
	}
	return d.WaitForTraining(ctx, in.PollInterval)
}

// WaitForTraining polls the model version status until it leaves
// TRAINING_IN_PROGRESS or the context is done.
func (d *Detector) WaitForTraining(ctx context.Context, interval time.Duration) (string, error) {
	if interval <= 0 {
		interval = time.Minute
	}
	started := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := d.ModelStatus(ctx)
		if err != nil {
			return "", err
		}
		if status != StatusTrainingInProgress {
			d.log.Info("model training finished",
				"model", d.cfg.ModelName, "status", status, "elapsed", time.Since(started).Round(time.Second))
			return status, nil
		}
		d.log.Info("model training in progress",
			"model", d.cfg.ModelName, "elapsed", time.Since(started).Round(time.Second))

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// ModelStatus returns the current status of the configured model version.
func (d *Detector) ModelStatus(ctx context.Context) (string, error) {
	out, err := d.api.GetModelVersion(ctx, &frauddetector.GetModelVersionInput{
		ModelId:            aws.String(d.cfg.ModelName),
		ModelType:          d.cfg.ModelType,
		ModelVersionNumber: aws.String(d.cfg.ModelVersion),
	})
	if err != nil {
		return "", fmt.Errorf("detector: get model version: %w", err)
	}
	return aws.ToString(out.Status), nil
}

// SetModelVersionInactive deactivates the configured model version.
func (d *Detector) SetModelVersionInactive(ctx context.Context) error {
	_, err := d.api.UpdateModelVersionStatus(ctx, &frauddetector.UpdateModelVersionStatusInput{
		ModelId:            aws.String(d.cfg.ModelName),
		ModelType:          d.cfg.ModelType,
		ModelVersionNumber: aws.String(d.cfg.ModelVersion),
		Status:             types.ModelVersionStatusInactive,
	})
	if err != nil {
		return fmt.Errorf("detector: set model version inactive: %w", err)
	}
	return nil
}
