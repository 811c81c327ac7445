package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudkit/fraudkit/pkg/detector"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Parallel()

	path := writeRulesFile(t, `
mode: ALL_MATCHED
rules:
  - rule_id: high_score
    expression: "$fraud_model_insightscore > 900"
    outcomes: [block]
  - rule_id: low_score
    expression: "$fraud_model_insightscore <= 900"
    outcomes: [approve, review]
`)

	rules, mode, err := loadRules(path)
	require.NoError(t, err)

	assert.Equal(t, types.RuleExecutionModeAllMatched, mode)
	assert.Equal(t, []detector.Rule{
		{RuleID: "high_score", Expression: "$fraud_model_insightscore > 900", Outcomes: []string{"block"}},
		{RuleID: "low_score", Expression: "$fraud_model_insightscore <= 900", Outcomes: []string{"approve", "review"}},
	}, rules)
}

func TestLoadRules_DefaultsMode(t *testing.T) {
	t.Parallel()

	path := writeRulesFile(t, `
rules:
  - rule_id: r1
    expression: "$x > 1"
    outcomes: [block]
`)

	_, mode, err := loadRules(path)
	require.NoError(t, err)
	assert.Equal(t, types.RuleExecutionModeFirstMatched, mode)
}

func TestLoadRules_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{"no rules", "mode: FIRST_MATCHED\n"},
		{"missing expression", "rules:\n  - rule_id: r1\n    outcomes: [block]\n"},
		{"missing outcomes", "rules:\n  - rule_id: r1\n    expression: \"$x > 1\"\n"},
		{"bad yaml", "rules: [unterminated"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeRulesFile(t, tc.content)
			_, _, err := loadRules(path)
			assert.Error(t, err)
		})
	}
}
