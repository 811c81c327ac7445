// Package detector wraps the Amazon Fraud Detector API with the call
// sequencing needed to take a profiled schema through project setup,
// training, activation, deployment and prediction. All detection and
// modeling happens in the remote service; this package only wires it up.
package detector

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/frauddetector/types"
)

// Config identifies the remote project this client operates on. It is
// passed explicitly to New; nothing in this package reads ambient state.
type Config struct {
	// EntityType represents who is performing the event.
	EntityType string
	// EventType defines the structure of an individual event.
	EventType string

	ModelName    string
	ModelVersion string
	ModelType    types.ModelTypeEnum

	DetectorName    string
	DetectorVersion string

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

func (c *Config) validate() error {
	switch {
	case c.EntityType == "":
		return fmt.Errorf("detector: entity type is required")
	case c.EventType == "":
		return fmt.Errorf("detector: event type is required")
	case c.ModelName == "":
		return fmt.Errorf("detector: model name is required")
	case c.ModelType == "":
		return fmt.Errorf("detector: model type is required")
	case c.DetectorName == "":
		return fmt.Errorf("detector: detector name is required")
	}
	return nil
}

// Detector sequences Fraud Detector API calls for one project.
type Detector struct {
	api API
	cfg Config
	log *slog.Logger
}

// New constructs a Detector. The model version is normalized to the
// service's major.minor format ("1" becomes "1.00").
func New(api API, cfg Config) (*Detector, error) {
	if api == nil {
		return nil, fmt.Errorf("detector: api client is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.ModelVersion == "" {
		cfg.ModelVersion = "1.00"
	}
	cfg.ModelVersion = NormalizeModelVersion(cfg.ModelVersion)
	if cfg.DetectorVersion == "" {
		cfg.DetectorVersion = "1"
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Detector{api: api, cfg: cfg, log: log}, nil
}

// ModelVersion returns the normalized model version this client targets.
func (d *Detector) ModelVersion() string {
	return d.cfg.ModelVersion
}

// NormalizeModelVersion appends a minor part when the version lacks one.
// The service rejects model versions without a decimal point.
func NormalizeModelVersion(v string) string {
	if !strings.Contains(v, ".") {
		return v + ".00"
	}
	return v
}

// Statuses reported by GetModelVersion.
const (
	StatusTrainingInProgress = "TRAINING_IN_PROGRESS"
	StatusTrainingComplete   = "TRAINING_COMPLETE"
	StatusActive             = "ACTIVE"
)

// Operation statuses used in bulk-call result maps.
const (
	statusCreated = "created"
	statusSkipped = "skipped"
	statusDeleted = "deleted"
)
