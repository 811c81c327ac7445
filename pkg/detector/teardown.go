package detector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
)

// DeleteModel removes the configured model.
func (d *Detector) DeleteModel(ctx context.Context) error {
	_, err := d.api.DeleteModel(ctx, &frauddetector.DeleteModelInput{
		ModelId:   aws.String(d.cfg.ModelName),
		ModelType: d.cfg.ModelType,
	})
	if err != nil {
		return fmt.Errorf("detector: delete model %q: %w", d.cfg.ModelName, err)
	}
	d.log.Info("model deleted", "model", d.cfg.ModelName)
	return nil
}

// DeleteEntityType removes the configured entity type.
func (d *Detector) DeleteEntityType(ctx context.Context) error {
	_, err := d.api.DeleteEntityType(ctx, &frauddetector.DeleteEntityTypeInput{
		Name: aws.String(d.cfg.EntityType),
	})
	if err != nil {
		return fmt.Errorf("detector: delete entity type %q: %w", d.cfg.EntityType, err)
	}
	d.log.Info("entity type deleted", "entityType", d.cfg.EntityType)
	return nil
}

// DeleteEventType removes the configured event type.
func (d *Detector) DeleteEventType(ctx context.Context) error {
	_, err := d.api.DeleteEventType(ctx, &frauddetector.DeleteEventTypeInput{
		Name: aws.String(d.cfg.EventType),
	})
	if err != nil {
		return fmt.Errorf("detector: delete event type %q: %w", d.cfg.EventType, err)
	}
	d.log.Info("event type deleted", "eventType", d.cfg.EventType)
	return nil
}

// DeleteVariables removes event variables by name.
func (d *Detector) DeleteVariables(ctx context.Context, names []string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		_, err := d.api.DeleteVariable(ctx, &frauddetector.DeleteVariableInput{
			Name: aws.String(name),
		})
		if err != nil {
			return nil, fmt.Errorf("detector: delete variable %q: %w", name, err)
		}
		d.log.Info("variable deleted", "variable", name)
		out[name] = statusDeleted
	}
	return out, nil
}

// DeleteLabels removes labels by name.
func (d *Detector) DeleteLabels(ctx context.Context, names []string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		_, err := d.api.DeleteLabel(ctx, &frauddetector.DeleteLabelInput{
			Name: aws.String(name),
		})
		if err != nil {
			return nil, fmt.Errorf("detector: delete label %q: %w", name, err)
		}
		d.log.Info("label deleted", "label", name)
		out[name] = statusDeleted
	}
	return out, nil
}

// DeleteDetectorVersion removes the configured detector version.
func (d *Detector) DeleteDetectorVersion(ctx context.Context) error {
	_, err := d.api.DeleteDetectorVersion(ctx, &frauddetector.DeleteDetectorVersionInput{
		DetectorId:        aws.String(d.cfg.DetectorName),
		DetectorVersionId: aws.String(d.cfg.DetectorVersion),
	})
	if err != nil {
		return fmt.Errorf("detector: delete detector version %s/%s: %w",
			d.cfg.DetectorName, d.cfg.DetectorVersion, err)
	}
	d.log.Info("detector version deleted", "detector", d.cfg.DetectorName, "version", d.cfg.DetectorVersion)
	return nil
}
