package detector

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/google/uuid"

	"github.com/fraudkit/fraudkit/pkg/worker"
)

// PredictInput is one event to score.
type PredictInput struct {
	// EventTimestamp in RFC 3339 format ("2006-01-02T15:04:05Z").
	EventTimestamp string
	// Variables maps event-variable names to string values.
	Variables map[string]string
	// EntityID defaults to "unknown".
	EntityID string
}

// RuleOutcome is one matched rule and its outcomes.
type RuleOutcome struct {
	RuleID   string   `json:"ruleId"`
	Outcomes []string `json:"outcomes"`
}

// Prediction is the score set returned by the deployed detector version.
type Prediction struct {
	Scores      map[string]float32 `json:"scores"`
	RuleResults []RuleOutcome      `json:"ruleResults"`
}

// Predict scores one event against the deployed detector version. Each call
// is assigned a fresh random event ID.
func (d *Detector) Predict(ctx context.Context, in PredictInput) (Prediction, error) {
	if in.EventTimestamp == "" {
		return Prediction{}, fmt.Errorf("detector: event timestamp is required")
	}
	entityID := in.EntityID
	if entityID == "" {
		entityID = "unknown"
	}

	out, err := d.api.GetEventPrediction(ctx, &frauddetector.GetEventPredictionInput{
		DetectorId:        aws.String(d.cfg.DetectorName),
		DetectorVersionId: aws.String(d.cfg.DetectorVersion),
		EventId:           aws.String(uuid.NewString()),
		EventTypeName:     aws.String(d.cfg.EventType),
		Entities: []types.Entity{{
			EntityType: aws.String(d.cfg.EntityType),
			EntityId:   aws.String(entityID),
		}},
		EventTimestamp: aws.String(in.EventTimestamp),
		EventVariables: in.Variables,
	})
	if err != nil {
		return Prediction{}, wrapPredictionError(err)
	}

	p := Prediction{Scores: make(map[string]float32)}
	for _, ms := range out.ModelScores {
		for name, score := range ms.Scores {
			p.Scores[name] = score
		}
	}
	for _, rr := range out.RuleResults {
		p.RuleResults = append(p.RuleResults, RuleOutcome{
			RuleID:   aws.ToString(rr.RuleId),
			Outcomes: rr.Outcomes,
		})
	}
	return p, nil
}

// BatchPredict scores many events concurrently through the worker pool.
// Throttled calls are retried per the options; results keep input order.
func (d *Detector) BatchPredict(ctx context.Context, events []PredictInput, opts worker.Options) ([]worker.Result[PredictInput, Prediction], error) {
	return worker.ProcessAll(ctx, events, d.Predict, opts)
}

// wrapPredictionError marks service throttling as transient so the worker
// pool retries it.
func wrapPredictionError(err error) error {
	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return &worker.TransientError{Err: fmt.Errorf("detector: get event prediction: %w", err)}
	}
	return fmt.Errorf("detector: get event prediction: %w", err)
}
