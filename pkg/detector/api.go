package detector

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
)

// API is the subset of the Amazon Fraud Detector API this package calls.
// *frauddetector.Client satisfies it; tests substitute a recording fake.
type API interface {
	PutEntityType(ctx context.Context, params *frauddetector.PutEntityTypeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.PutEntityTypeOutput, error)
	GetEntityTypes(ctx context.Context, params *frauddetector.GetEntityTypesInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetEntityTypesOutput, error)
	DeleteEntityType(ctx context.Context, params *frauddetector.DeleteEntityTypeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteEntityTypeOutput, error)

	PutLabel(ctx context.Context, params *frauddetector.PutLabelInput, optFns ...func(*frauddetector.Options)) (*frauddetector.PutLabelOutput, error)
	GetLabels(ctx context.Context, params *frauddetector.GetLabelsInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetLabelsOutput, error)
	DeleteLabel(ctx context.Context, params *frauddetector.DeleteLabelInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteLabelOutput, error)

	CreateVariable(ctx context.Context, params *frauddetector.CreateVariableInput, optFns ...func(*frauddetector.Options)) (*frauddetector.CreateVariableOutput, error)
	GetVariables(ctx context.Context, params *frauddetector.GetVariablesInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetVariablesOutput, error)
	DeleteVariable(ctx context.Context, params *frauddetector.DeleteVariableInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteVariableOutput, error)

	PutEventType(ctx context.Context, params *frauddetector.PutEventTypeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.PutEventTypeOutput, error)
	GetEventTypes(ctx context.Context, params *frauddetector.GetEventTypesInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetEventTypesOutput, error)
	DeleteEventType(ctx context.Context, params *frauddetector.DeleteEventTypeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteEventTypeOutput, error)

	CreateModel(ctx context.Context, params *frauddetector.CreateModelInput, optFns ...func(*frauddetector.Options)) (*frauddetector.CreateModelOutput, error)
	GetModels(ctx context.Context, params *frauddetector.GetModelsInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetModelsOutput, error)
	DeleteModel(ctx context.Context, params *frauddetector.DeleteModelInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteModelOutput, error)

	CreateModelVersion(ctx context.Context, params *frauddetector.CreateModelVersionInput, optFns ...func(*frauddetector.Options)) (*frauddetector.CreateModelVersionOutput, error)
	GetModelVersion(ctx context.Context, params *frauddetector.GetModelVersionInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetModelVersionOutput, error)
	UpdateModelVersionStatus(ctx context.Context, params *frauddetector.UpdateModelVersionStatusInput, optFns ...func(*frauddetector.Options)) (*frauddetector.UpdateModelVersionStatusOutput, error)

	PutDetector(ctx context.Context, params *frauddetector.PutDetectorInput, optFns ...func(*frauddetector.Options)) (*frauddetector.PutDetectorOutput, error)
	CreateDetectorVersion(ctx context.Context, params *frauddetector.CreateDetectorVersionInput, optFns ...func(*frauddetector.Options)) (*frauddetector.CreateDetectorVersionOutput, error)
	DeleteDetectorVersion(ctx context.Context, params *frauddetector.DeleteDetectorVersionInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteDetectorVersionOutput, error)

	PutOutcome(ctx context.Context, params *frauddetector.PutOutcomeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.PutOutcomeOutput, error)
	GetOutcomes(ctx context.Context, params *frauddetector.GetOutcomesInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetOutcomesOutput, error)
	DeleteOutcome(ctx context.Context, params *frauddetector.DeleteOutcomeInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteOutcomeOutput, error)

	CreateRule(ctx context.Context, params *frauddetector.CreateRuleInput, optFns ...func(*frauddetector.Options)) (*frauddetector.CreateRuleOutput, error)
	GetRules(ctx context.Context, params *frauddetector.GetRulesInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetRulesOutput, error)
	DeleteRule(ctx context.Context, params *frauddetector.DeleteRuleInput, optFns ...func(*frauddetector.Options)) (*frauddetector.DeleteRuleOutput, error)

	GetEventPrediction(ctx context.Context, params *frauddetector.GetEventPredictionInput, optFns ...func(*frauddetector.Options)) (*frauddetector.GetEventPredictionOutput, error)
}
