package cli

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fraudkit/fraudkit/pkg/detector"
)

// rulesFile is the on-disk shape of a --rules YAML file.
type rulesFile struct {
	Mode  string `yaml:"mode"`
	Rules []struct {
		RuleID     string   `yaml:"rule_id"`
		Expression string   `yaml:"expression"`
		Outcomes   []string `yaml:"outcomes"`
	} `yaml:"rules"`
}

func newDeployCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Publish a detector version from the activated model and a rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, cfg, err := newDetector(cmd)
			if err != nil {
				return err
			}

			rules, mode, err := loadRules(rulesPath)
			if err != nil {
				return err
			}
			status, err := d.Deploy(cmd.Context(), rules, mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "detector %s version %s: %s\n",
				cfg.Project.DetectorName, cfg.Project.DetectorVersion, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file of rules to create and attach")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}

func loadRules(path string) ([]detector.Rule, types.RuleExecutionMode, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var rf rulesFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, "", fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if len(rf.Rules) == 0 {
		return nil, "", fmt.Errorf("rules file %s defines no rules", path)
	}

	mode := types.RuleExecutionModeFirstMatched
	if rf.Mode != "" {
		mode = types.RuleExecutionMode(rf.Mode)
	}
	rules := make([]detector.Rule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		if r.RuleID == "" || r.Expression == "" || len(r.Outcomes) == 0 {
			return nil, "", fmt.Errorf("rules file %s: rule %d needs rule_id, expression and outcomes", path, i)
		}
		rules = append(rules, detector.Rule{
			RuleID:     r.RuleID,
			Expression: r.Expression,
			Outcomes:   r.Outcomes,
		})
	}
	return rules, mode, nil
}
