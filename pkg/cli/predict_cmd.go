package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fraudkit/fraudkit/pkg/detector"
	"github.com/fraudkit/fraudkit/pkg/profile"
	"github.com/fraudkit/fraudkit/pkg/worker"
)

func newPredictCmd() *cobra.Command {
	var (
		vars      []string
		entityID  string
		timestamp string

		batchPath    string
		tsColumn     string
		entityColumn string
		workers      int
		rps          float64
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score a single event or a CSV of events against the deployed detector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, _, err := newDetector(cmd)
			if err != nil {
				return err
			}
			if batchPath != "" {
				return runBatchPredict(cmd, d, batchPath, tsColumn, entityColumn, workers, rps)
			}
			if len(vars) == 0 {
				return fmt.Errorf("either --var or --batch is required")
			}

			variables := make(map[string]string, len(vars))
			for _, kv := range vars {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("--var %q is not name=value", kv)
				}
				variables[k] = v
			}
			if timestamp == "" {
				timestamp = time.Now().UTC().Format(time.RFC3339)
			}

			pred, err := d.Predict(cmd.Context(), detector.PredictInput{
				EventTimestamp: timestamp,
				Variables:      variables,
				EntityID:       entityID,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pred)
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Event variable as name=value (repeatable)")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "Entity ID for the event")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "Event timestamp (RFC 3339, defaults to now)")

	cmd.Flags().StringVar(&batchPath, "batch", "", "CSV of events to score, one row per event")
	cmd.Flags().StringVar(&tsColumn, "timestamp-column", "EVENT_TIMESTAMP", "Timestamp column in the batch CSV")
	cmd.Flags().StringVar(&entityColumn, "entity-column", "", "Entity ID column in the batch CSV")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent prediction workers for --batch")
	cmd.Flags().Float64Var(&rps, "rps", 0, "Request rate limit for --batch (0 disables)")
	return cmd
}

func runBatchPredict(cmd *cobra.Command, d *detector.Detector, path, tsColumn, entityColumn string, workers int, rps float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sample, err := profile.ReadSampleCSV(f)
	if err != nil {
		return err
	}

	events := make([]detector.PredictInput, 0, len(sample.Records))
	for _, rec := range sample.Records {
		in := detector.PredictInput{Variables: make(map[string]string, len(rec))}
		for name, value := range rec {
			switch name {
			case tsColumn:
				in.EventTimestamp = value
			case entityColumn:
				in.EntityID = value
			default:
				in.Variables[name] = value
			}
		}
		events = append(events, in)
	}

	results, err := d.BatchPredict(cmd.Context(), events, worker.Options{
		Workers:      workers,
		RateLimitRPS: rps,
	})
	if err != nil {
		return err
	}

	type row struct {
		Index      int                  `json:"index"`
		Prediction *detector.Prediction `json:"prediction,omitempty"`
		Error      string               `json:"error,omitempty"`
	}
	out := make([]row, 0, len(results))
	failed := 0
	for i, r := range results {
		rw := row{Index: i}
		if r.Err != nil {
			rw.Error = r.Err.Error()
			failed++
		} else {
			pred := r.Output
			rw.Prediction = &pred
		}
		out = append(out, rw)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d events failed", failed, len(results))
	}
	return nil
}
