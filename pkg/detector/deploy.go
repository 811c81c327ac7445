package detector

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
)

// Outcome is a named rule outcome.
type Outcome struct {
	Name        string
	Description string
}

// Rule maps a DETECTORPL expression to one or more outcomes.
type Rule struct {
	RuleID     string
	Expression string
	Outcomes   []string
}

// Activate creates the detector, registers the outcomes and activates the
// trained model version. Training must have completed first.
func (d *Detector) Activate(ctx context.Context, outcomes []Outcome) error {
	status, err := d.ModelStatus(ctx)
	if err != nil {
		return err
	}
	if status != StatusTrainingComplete && status != StatusActive {
		return fmt.Errorf("detector: model version is %s, want %s before activation", status, StatusTrainingComplete)
	}

	_, err = d.api.PutDetector(ctx, &frauddetector.PutDetectorInput{
		DetectorId:    aws.String(d.cfg.DetectorName),
		EventTypeName: aws.String(d.cfg.EventType),
	})
	if err != nil {
		return fmt.Errorf("detector: put detector %q: %w", d.cfg.DetectorName, err)
	}

	if err := d.CreateOutcomes(ctx, outcomes); err != nil {
		return err
	}

	_, err = d.api.UpdateModelVersionStatus(ctx, &frauddetector.UpdateModelVersionStatusInput{
		ModelId:            aws.String(d.cfg.ModelName),
		ModelType:          d.cfg.ModelType,
		ModelVersionNumber: aws.String(d.cfg.ModelVersion),
		Status:             types.ModelVersionStatusActive,
	})
	if err != nil {
		return fmt.Errorf("detector: activate model version: %w", err)
	}
	d.log.Info("model version activated", "model", d.cfg.ModelName, "version", d.cfg.ModelVersion)
	return nil
}

// CreateOutcomes registers outcomes with the service.
func (d *Detector) CreateOutcomes(ctx context.Context, outcomes []Outcome) error {
	for _, o := range outcomes {
		_, err := d.api.PutOutcome(ctx, &frauddetector.PutOutcomeInput{
			Name:        aws.String(o.Name),
			Description: aws.String(o.Description),
		})
		if err != nil {
			return fmt.Errorf("detector: put outcome %q: %w", o.Name, err)
		}
	}
	return nil
}

// DeleteOutcomes removes outcomes from the service.
func (d *Detector) DeleteOutcomes(ctx context.Context, outcomes []Outcome) error {
	for _, o := range outcomes {
		_, err := d.api.DeleteOutcome(ctx, &frauddetector.DeleteOutcomeInput{
			Name: aws.String(o.Name),
		})
		if err != nil {
			return fmt.Errorf("detector: delete outcome %q: %w", o.Name, err)
		}
	}
	return nil
}

// Outcomes lists the outcomes registered with the service.
func (d *Detector) Outcomes(ctx context.Context) ([]Outcome, error) {
	out, err := d.api.GetOutcomes(ctx, &frauddetector.GetOutcomesInput{})
	if err != nil {
		return nil, fmt.Errorf("detector: list outcomes: %w", err)
	}
	outcomes := make([]Outcome, 0, len(out.Outcomes))
	for _, o := range out.Outcomes {
		outcomes = append(outcomes, Outcome{
			Name:        aws.ToString(o.Name),
			Description: aws.ToString(o.Description),
		})
	}
	return outcomes, nil
}

// CreateRules creates any rules not already attached to the detector.
func (d *Detector) CreateRules(ctx context.Context, rules []Rule) (map[string]string, error) {
	existing, err := d.Rules(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[aws.ToString(r.RuleId)] = true
	}

	out := make(map[string]string, len(rules))
	for _, r := range rules {
		if have[r.RuleID] {
			d.log.Warn("rule already exists, skipping", "rule", r.RuleID)
			out[r.RuleID] = statusSkipped
			continue
		}
		_, err := d.api.CreateRule(ctx, &frauddetector.CreateRuleInput{
			RuleId:      aws.String(r.RuleID),
			DetectorId:  aws.String(d.cfg.DetectorName),
			Description: aws.String(fmt.Sprintf("Rule %s for outcomes %v", r.RuleID, r.Outcomes)),
			Expression:  aws.String(r.Expression),
			Outcomes:    r.Outcomes,
			Language:    types.LanguageDetectorpl,
		})
		if err != nil {
			return nil, fmt.Errorf("detector: create rule %q: %w", r.RuleID, err)
		}
		d.log.Info("rule created", "rule", r.RuleID)
		out[r.RuleID] = statusCreated
	}
	return out, nil
}

// Rules lists the rules attached to the detector.
func (d *Detector) Rules(ctx context.Context) ([]types.RuleDetail, error) {
	out, err := d.api.GetRules(ctx, &frauddetector.GetRulesInput{
		DetectorId: aws.String(d.cfg.DetectorName),
	})
	if err != nil {
		return nil, fmt.Errorf("detector: list rules: %w", err)
	}
	return out.RuleDetails, nil
}

// DeleteRules removes rules from the detector. Rules referenced by an
// active or inactive detector version cannot be deleted; those failures
// are logged and skipped.
func (d *Detector) DeleteRules(ctx context.Context, rules []types.RuleDetail) {
	for _, r := range rules {
		_, err := d.api.DeleteRule(ctx, &frauddetector.DeleteRuleInput{
			Rule: &types.Rule{
				DetectorId:  aws.String(d.cfg.DetectorName),
				RuleId:      r.RuleId,
				RuleVersion: r.RuleVersion,
			},
		})
		if err != nil {
			d.log.Warn("delete rule failed", "rule", aws.ToString(r.RuleId), "err", err)
		}
	}
}

// Deploy creates a detector version from the model version and the
// detector's rules. The model version must be active. When rules are
// supplied they are created first; otherwise existing rules are used.
func (d *Detector) Deploy(ctx context.Context, rules []Rule, mode types.RuleExecutionMode) (string, error) {
	status, err := d.ModelStatus(ctx)
	if err != nil {
		return "", err
	}
	if status != StatusActive {
		return "", fmt.Errorf("detector: model version is %s, want %s before deploy", status, StatusActive)
	}
	if mode == "" {
		mode = types.RuleExecutionModeFirstMatched
	}

	if len(rules) > 0 {
		if _, err := d.CreateRules(ctx, rules); err != nil {
			return "", err
		}
	}
	active, err := d.Rules(ctx)
	if err != nil {
		return "", err
	}
	if len(active) == 0 {
		return "", fmt.Errorf("detector: no rules attached to detector %q", d.cfg.DetectorName)
	}

	payload := make([]types.Rule, 0, len(active))
	for _, r := range active {
		payload = append(payload, types.Rule{
			DetectorId:  aws.String(d.cfg.DetectorName),
			RuleId:      r.RuleId,
			RuleVersion: r.RuleVersion,
		})
	}

	out, err := d.api.CreateDetectorVersion(ctx, &frauddetector.CreateDetectorVersionInput{
		DetectorId: aws.String(d.cfg.DetectorName),
		Rules:      payload,
		ModelVersions: []types.ModelVersion{{
			ModelId:            aws.String(d.cfg.ModelName),
			ModelType:          d.cfg.ModelType,
			ModelVersionNumber: aws.String(d.cfg.ModelVersion),
		}},
		RuleExecutionMode: mode,
	})
	if err != nil {
		return "", fmt.Errorf("detector: create detector version: %w", err)
	}
	versionID := aws.ToString(out.DetectorVersionId)
	d.log.Info("detector version deployed", "detector", d.cfg.DetectorName, "version", versionID)
	return versionID, nil
}
