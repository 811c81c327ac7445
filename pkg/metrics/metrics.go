// Package metrics retrieves training metrics for a Fraud Detector model
// version: the AUC plus precision/recall trade-offs along the score
// threshold sweep the service reports after training.
package metrics

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
)

// API is the single Fraud Detector call this package needs.
// *frauddetector.Client satisfies it.
type API interface {
	DescribeModelVersions(ctx context.Context, params *frauddetector.DescribeModelVersionsInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DescribeModelVersionsOutput, error)
}

// Point is one threshold on the precision/recall sweep. F1 is derived from
// precision and recall (TPR); it is 0 when both are 0.
type Point struct {
	Threshold float64 `json:"threshold"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	FPR       float64 `json:"fpr"`
	F1        float64 `json:"f1"`
}

// TrainingMetrics summarizes a trained model version.
type TrainingMetrics struct {
	AUC    float64 `json:"auc"`
	Points []Point `json:"points"`
}

// Client fetches metrics for one model version.
type Client struct {
	api          API
	modelName    string
	modelType    types.ModelTypeEnum
	modelVersion string
}

// New constructs a metrics client for the given model version.
func New(api API, modelName string, modelType types.ModelTypeEnum, modelVersion string) *Client {
	return &Client{api: api, modelName: modelName, modelType: modelType, modelVersion: modelVersion}
}

// TrainingMetrics fetches and derives the metrics for the model version.
// It fails when the version has no training result yet.
func (c *Client) TrainingMetrics(ctx context.Context) (TrainingMetrics, error) {
	out, err := c.api.DescribeModelVersions(ctx, &frauddetector.DescribeModelVersionsInput{
		ModelId:            aws.String(c.modelName),
		ModelType:          c.modelType,
		ModelVersionNumber: aws.String(c.modelVersion),
	})
	if err != nil {
		return TrainingMetrics{}, fmt.Errorf("metrics: describe model versions: %w", err)
	}
	for _, detail := range out.ModelVersionDetails {
		tr := detail.TrainingResult
		if tr == nil || tr.TrainingMetrics == nil {
			continue
		}
		return fromTrainingMetrics(tr.TrainingMetrics), nil
	}
	return TrainingMetrics{}, fmt.Errorf("metrics: model %s version %s has no training result",
		c.modelName, c.modelVersion)
}

// BestF1 returns the sweep point with the highest F1 score.
func (m TrainingMetrics) BestF1() (Point, error) {
	if len(m.Points) == 0 {
		return Point{}, fmt.Errorf("metrics: no threshold points")
	}
	best := m.Points[0]
	for _, p := range m.Points[1:] {
		if p.F1 > best.F1 {
			best = p
		}
	}
	return best, nil
}

func fromTrainingMetrics(tm *types.TrainingMetrics) TrainingMetrics {
	out := TrainingMetrics{AUC: float64(aws.ToFloat32(tm.Auc))}
	for _, dp := range tm.MetricDataPoints {
		p := Point{
			Threshold: float64(aws.ToFloat32(dp.Threshold)),
			Precision: float64(aws.ToFloat32(dp.Precision)),
			Recall:    float64(aws.ToFloat32(dp.Tpr)),
			FPR:       float64(aws.ToFloat32(dp.Fpr)),
		}
		if p.Precision+p.Recall > 0 {
			p.F1 = 2 * p.Precision * p.Recall / (p.Precision + p.Recall)
		}
		out.Points = append(out.Points, p)
	}
	return out
}
