package metrics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudkit/fraudkit/pkg/metrics"
)

type fakeAPI struct {
	out *frauddetector.DescribeModelVersionsOutput
	err error

	gotInput *frauddetector.DescribeModelVersionsInput
}

func (f *fakeAPI) DescribeModelVersions(_ context.Context, in *frauddetector.DescribeModelVersionsInput, _ ...func(*frauddetector.Options)) (*frauddetector.DescribeModelVersionsOutput, error) {
	f.gotInput = in
	return f.out, f.err
}

func trainedOutput() *frauddetector.DescribeModelVersionsOutput {
	return &frauddetector.DescribeModelVersionsOutput{
		ModelVersionDetails: []types.ModelVersionDetail{{
			ModelId:            aws.String("txn_model"),
			ModelVersionNumber: aws.String("1.00"),
			TrainingResult: &types.TrainingResult{
				TrainingMetrics: &types.TrainingMetrics{
					Auc: aws.Float32(0.93),
					MetricDataPoints: []types.MetricDataPoint{
						{Threshold: aws.Float32(500), Precision: aws.Float32(0.50), Tpr: aws.Float32(0.90), Fpr: aws.Float32(0.20)},
						{Threshold: aws.Float32(700), Precision: aws.Float32(0.80), Tpr: aws.Float32(0.70), Fpr: aws.Float32(0.05)},
						{Threshold: aws.Float32(900), Precision: aws.Float32(0.95), Tpr: aws.Float32(0.30), Fpr: aws.Float32(0.01)},
					},
				},
			},
		}},
	}
}

func TestTrainingMetrics(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{out: trainedOutput()}
	c := metrics.New(api, "txn_model", types.ModelTypeEnumOnlineFraudInsights, "1.00")

	tm, err := c.TrainingMetrics(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 0.93, tm.AUC, 0.001)
	require.Len(t, tm.Points, 3)
	assert.InDelta(t, 700, tm.Points[1].Threshold, 0.001)
	assert.InDelta(t, 0.80, tm.Points[1].Precision, 0.001)
	assert.InDelta(t, 0.70, tm.Points[1].Recall, 0.001)
	// F1 = 2PR / (P+R)
	assert.InDelta(t, 2*0.80*0.70/(0.80+0.70), tm.Points[1].F1, 0.001)

	require.NotNil(t, api.gotInput)
	assert.Equal(t, "txn_model", aws.ToString(api.gotInput.ModelId))
	assert.Equal(t, "1.00", aws.ToString(api.gotInput.ModelVersionNumber))
}

func TestTrainingMetrics_NoTrainingResult(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{out: &frauddetector.DescribeModelVersionsOutput{
		ModelVersionDetails: []types.ModelVersionDetail{{
			ModelId: aws.String("txn_model"),
		}},
	}}
	c := metrics.New(api, "txn_model", types.ModelTypeEnumOnlineFraudInsights, "1.00")

	_, err := c.TrainingMetrics(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no training result")
}

func TestTrainingMetrics_PropagatesAPIError(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{err: errors.New("access denied")}
	c := metrics.New(api, "txn_model", types.ModelTypeEnumOnlineFraudInsights, "1.00")

	_, err := c.TrainingMetrics(context.Background())
	assert.Error(t, err)
}

func TestBestF1(t *testing.T) {
	t.Parallel()

	tm := metrics.TrainingMetrics{Points: []metrics.Point{
		{Threshold: 500, F1: 0.64},
		{Threshold: 700, F1: 0.75},
		{Threshold: 900, F1: 0.46},
	}}
	best, err := tm.BestF1()
	require.NoError(t, err)
	assert.InDelta(t, 700, best.Threshold, 0.001)

	_, err = metrics.TrainingMetrics{}.BestF1()
	assert.Error(t, err)
}
