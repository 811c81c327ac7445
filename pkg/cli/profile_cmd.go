package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/pkg/profile"
)

func newProfileCmd() *cobra.Command {
	var (
		inputPath       string
		labelColumn     string
		timestampColumn string
		catFraction     float64
		catCap          int
		showInputs      bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Infer a variable/label schema from a training CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(inputPath)
			if err != nil {
				return err
			}
			defer f.Close()

			sample, err := profile.ReadSampleCSV(f)
			if err != nil {
				return err
			}

			p := profile.New(
				profile.WithCategoricalFraction(catFraction),
				profile.WithCategoricalCap(catCap),
				profile.WithTimestampColumn(timestampColumn),
			)
			schema, err := p.Profile(sample, labelColumn)
			if err != nil {
				return err
			}

			var out any = schema
			if showInputs {
				inputs, err := schema.DetectorInputs()
				if err != nil {
					return err
				}
				out = struct {
					Schema *profile.Schema        `json:"schema"`
					Inputs profile.DetectorInputs `json:"detectorInputs"`
				}{schema, inputs}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Training data CSV path")
	cmd.Flags().StringVar(&labelColumn, "label", "", "Label column name (auto-detected when empty)")
	cmd.Flags().StringVar(&timestampColumn, "timestamp", "EVENT_TIMESTAMP", "Event timestamp column name")
	cmd.Flags().Float64Var(&catFraction, "categorical-fraction", 0.05, "Distinct/rows ratio at or below which a column is categorical")
	cmd.Flags().IntVar(&catCap, "categorical-cap", 20, "Absolute distinct-count cap for categorical columns")
	cmd.Flags().BoolVar(&showInputs, "detector-inputs", false, "Also emit the derived detector configuration inputs")
	_ = cmd.MarkFlagRequired("input")

	// Keep help output predictable for scripting.
	cmd.Flags().SortFlags = false
	return cmd
}
