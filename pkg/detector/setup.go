package detector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"

	"github.com/fraudkit/fraudkit/pkg/profile"
)

// SetupProject creates the entity type, labels, variables, event type and
// model for the project, skipping anything that already exists. The result
// maps each resource name to "created" or "skipped".
func (d *Detector) SetupProject(ctx context.Context, inputs profile.DetectorInputs) (map[string]string, error) {
	out := make(map[string]string)

	st, err := d.CreateEntityType(ctx)
	if err != nil {
		return nil, err
	}
	merge(out, st)

	st, err = d.CreateLabels(ctx, inputs.Labels)
	if err != nil {
		return nil, err
	}
	merge(out, st)

	st, err = d.CreateVariables(ctx, inputs.Variables)
	if err != nil {
		return nil, err
	}
	merge(out, st)

	st, err = d.CreateEventType(ctx, inputs)
	if err != nil {
		return nil, err
	}
	merge(out, st)

	st, err = d.CreateModel(ctx)
	if err != nil {
		return nil, err
	}
	merge(out, st)

	return out, nil
}

// CreateEntityType creates the configured entity type unless it exists.
func (d *Detector) CreateEntityType(ctx context.Context) (map[string]string, error) {
	existing, err := d.api.GetEntityTypes(ctx, &frauddetector.GetEntityTypesInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list entity types: %w", err)
	}
	for _, e := range existing.EntityTypes {
		if aws.ToString(e.Name) == d.cfg.EntityType {
			d.log.Warn("entity type already exists, skipping", "entityType", d.cfg.EntityType)
			return map[string]string{d.cfg.EntityType: statusSkipped}, nil
		}
	}

	_, err = d.api.PutEntityType(ctx, &frauddetector.PutEntityTypeInput{
		Name: aws.String(d.cfg.EntityType),
	})
	if err != nil {
		return nil, fmt.Errorf("detector: put entity type %q: %w", d.cfg.EntityType, err)
	}
	d.log.Info("entity type created", "entityType", d.cfg.EntityType)
	return map[string]string{d.cfg.EntityType: statusCreated}, nil
}

// CreateLabels creates any labels not present remotely.
func (d *Detector) CreateLabels(ctx context.Context, labels []profile.LabelDef) (map[string]string, error) {
	existing, err := d.api.GetLabels(ctx, &frauddetector.GetLabelsInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list labels: %w", err)
	}
	have := make(map[string]bool, len(existing.Labels))
	for _, l := range existing.Labels {
		have[aws.ToString(l.Name)] = true
	}

	out := make(map[string]string, len(labels))
	for _, l := range labels {
		if have[l.Name] {
			d.log.Warn("label already exists, skipping", "label", l.Name)
			out[l.Name] = statusSkipped
			continue
		}
		_, err := d.api.PutLabel(ctx, &frauddetector.PutLabelInput{
			Name:        aws.String(l.Name),
			Description: aws.String(l.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("detector: put label %q: %w", l.Name, err)
		}
		d.log.Info("label created", "label", l.Name)
		out[l.Name] = statusCreated
	}
	return out, nil
}

// CreateVariables creates any event variables not present remotely.
func (d *Detector) CreateVariables(ctx context.Context, variables []profile.VariableDef) (map[string]string, error) {
	existing, err := d.api.GetVariables(ctx, &frauddetector.GetVariablesInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list variables: %w", err)
	}
	have := make(map[string]bool, len(existing.Variables))
	for _, v := range existing.Variables {
		have[aws.ToString(v.Name)] = true
	}

	out := make(map[string]string, len(variables))
	for _, v := range variables {
		if have[v.Name] {
			d.log.Warn("variable already exists, skipping", "variable", v.Name)
			out[v.Name] = statusSkipped
			continue
		}
		_, err := d.api.CreateVariable(ctx, &frauddetector.CreateVariableInput{
			Name:         aws.String(v.Name),
			VariableType: aws.String(v.VariableType),
			DataSource:   types.DataSourceEvent,
			DataType:     types.DataType(v.DataType),
			DefaultValue: aws.String(v.DefaultValue),
		})
		if err != nil {
			return nil, fmt.Errorf("detector: create variable %q: %w", v.Name, err)
		}
		d.log.Info("variable created", "variable", v.Name, "variableType", v.VariableType)
		out[v.Name] = statusCreated
	}
	return out, nil
}

// CreateEventType creates the configured event type unless it exists.
func (d *Detector) CreateEventType(ctx context.Context, inputs profile.DetectorInputs) (map[string]string, error) {
	existing, err := d.api.GetEventTypes(ctx, &frauddetector.GetEventTypesInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list event types: %w", err)
	}
	for _, e := range existing.EventTypes {
		if aws.ToString(e.Name) == d.cfg.EventType {
			d.log.Warn("event type already exists, skipping", "eventType", d.cfg.EventType)
			return map[string]string{d.cfg.EventType: statusSkipped}, nil
		}
	}

	vars := make([]string, 0, len(inputs.Variables))
	for _, v := range inputs.Variables {
		vars = append(vars, v.Name)
	}
	labels := make([]string, 0, len(inputs.Labels))
	for _, l := range inputs.Labels {
		labels = append(labels, l.Name)
	}

	_, err = d.api.PutEventType(ctx, &frauddetector.PutEventTypeInput{
		Name:           aws.String(d.cfg.EventType),
		EventVariables: vars,
		Labels:         labels,
		EntityTypes:    []string{d.cfg.EntityType},
	})
	if err != nil {
		return nil, fmt.Errorf("detector: put event type %q: %w", d.cfg.EventType, err)
	}
	d.log.Info("event type created", "eventType", d.cfg.EventType)
	return map[string]string{d.cfg.EventType: statusCreated}, nil
}

// CreateModel creates the configured model unless it exists.
func (d *Detector) CreateModel(ctx context.Context) (map[string]string, error) {
	existing, err := d.api.GetModels(ctx, &frauddetector.GetModelsInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list models: %w", err)
	}
	for _, m := range existing.Models {
		if aws.ToString(m.ModelId) == d.cfg.ModelName {
			d.log.Warn("model already exists, skipping", "model", d.cfg.ModelName)
			return map[string]string{d.cfg.ModelName: statusSkipped}, nil
		}
	}

	_, err = d.api.CreateModel(ctx, &frauddetector.CreateModelInput{
		ModelId:       aws.String(d.cfg.ModelName),
		ModelType:     d.cfg.ModelType,
		EventTypeName: aws.String(d.cfg.EventType),
	})
	if err != nil {
		return nil, fmt.Errorf("detector: create model %q: %w", d.cfg.ModelName, err)
	}
	d.log.Info("model created", "model", d.cfg.ModelName)
	return map[string]string{d.cfg.ModelName: statusCreated}, nil
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
