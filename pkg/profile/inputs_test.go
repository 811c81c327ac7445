package profile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudkit/fraudkit/pkg/profile"
)

func TestDetectorInputs_MapsSchemaToServiceTypes(t *testing.T) {
	t.Parallel()

	sample := profile.NewSample(
		[]string{"Category", "Value", "EVENT_LABEL", "EVENT_TIMESTAMP"},
		[]profile.Record{
			{"Category": "a", "Value": "1.5", "EVENT_LABEL": "legit", "EVENT_TIMESTAMP": "2026-01-01T00:00:00Z"},
			{"Category": "b", "Value": "2.0", "EVENT_LABEL": "legit", "EVENT_TIMESTAMP": "2026-01-02T00:00:00Z"},
			{"Category": "a", "Value": "3.5", "EVENT_LABEL": "legit", "EVENT_TIMESTAMP": "2026-01-03T00:00:00Z"},
			{"Category": "b", "Value": "4.0", "EVENT_LABEL": "fraud", "EVENT_TIMESTAMP": "2026-01-04T00:00:00Z"},
		},
	)

	p := profile.New(profile.WithTimestampColumn("EVENT_TIMESTAMP"))
	schema, err := p.Profile(sample, "EVENT_LABEL")
	require.NoError(t, err)

	in, err := schema.DetectorInputs()
	require.NoError(t, err)

	assert.Equal(t, []string{"Category", "Value"}, in.ModelVariables)
	assert.Equal(t, map[string][]string{
		"FRAUD": {"fraud"},
		"LEGIT": {"legit"},
	}, in.LabelMapper)
	assert.ElementsMatch(t, []profile.LabelDef{{Name: "fraud"}, {Name: "legit"}}, in.Labels)

	require.Len(t, in.Variables, 2)
	assert.Equal(t, profile.VariableDef{
		Name:         "Category",
		VariableType: profile.VariableTypeCategory,
		DataType:     "STRING",
		DefaultValue: "<unknown>",
	}, in.Variables[0])
	assert.Equal(t, profile.VariableDef{
		Name:         "Value",
		VariableType: profile.VariableTypeNumeric,
		DataType:     "FLOAT",
		DefaultValue: "0.0",
	}, in.Variables[1])
}

func TestDetectorInputs_NamePatternOverrides(t *testing.T) {
	t.Parallel()

	sample := profile.NewSample(
		[]string{"ip_address", "email_domain", "label"},
		buildRecords(40, func(i int) profile.Record {
			label := "good"
			if i%4 == 0 {
				label = "bad"
			}
			return profile.Record{
				"ip_address":   fmt.Sprintf("10.0.0.%d", i),
				"email_domain": fmt.Sprintf("user%d@example.com", i),
				"label":        label,
			}
		}),
	)

	schema, err := profile.New().Profile(sample, "label")
	require.NoError(t, err)
	in, err := schema.DetectorInputs()
	require.NoError(t, err)

	byName := map[string]string{}
	for _, v := range in.Variables {
		byName[v.Name] = v.VariableType
	}
	assert.Equal(t, profile.VariableTypeIPAddress, byName["ip_address"])
	assert.Equal(t, profile.VariableTypeEmailAddress, byName["email_domain"])
}

func TestDetectorInputs_ExcludedColumnsAreDropped(t *testing.T) {
	t.Parallel()

	sample := profile.NewSample(
		[]string{"mostly_missing", "amount", "label"},
		buildRecords(40, func(i int) profile.Record {
			rec := profile.Record{
				"mostly_missing": "",
				"amount":         fmt.Sprintf("%d.25", i),
				"label":          "good",
			}
			if i%4 == 0 {
				rec["label"] = "bad"
			}
			return rec
		}),
	)

	schema, err := profile.New().Profile(sample, "label")
	require.NoError(t, err)
	in, err := schema.DetectorInputs()
	require.NoError(t, err)

	assert.Equal(t, []string{"amount"}, in.ModelVariables)
}

func TestDetectorInputs_FreeTextVariable(t *testing.T) {
	t.Parallel()

	sample := profile.NewSample(
		[]string{"note", "label"},
		buildRecords(100, func(i int) profile.Record {
			label := "good"
			if i%4 == 0 {
				label = "bad"
			}
			return profile.Record{
				"note":  fmt.Sprintf("customer wrote message %d about the charge", i),
				"label": label,
			}
		}),
	)

	schema, err := profile.New().Profile(sample, "label")
	require.NoError(t, err)
	in, err := schema.DetectorInputs()
	require.NoError(t, err)

	require.Len(t, in.Variables, 1)
	assert.Equal(t, profile.VariableTypeFreeFormText, in.Variables[0].VariableType)
}

func TestDetectorInputs_RequiresLabel(t *testing.T) {
	t.Parallel()

	var schema profile.Schema
	_, err := schema.DetectorInputs()
	assert.Error(t, err)
}

func buildRecords(n int, gen func(i int) profile.Record) []profile.Record {
	out := make([]profile.Record, n)
	for i := 0; i < n; i++ {
		out[i] = gen(i)
	}
	return out
}
