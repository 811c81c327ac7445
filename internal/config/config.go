// Package config loads toolkit configuration from a YAML file and the
// environment, and builds the AWS SDK configuration used by the clients.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/frauddetector"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"gopkg.in/yaml.v3"
)

// Project identifies the remote Fraud Detector project.
type Project struct {
	EntityType      string `yaml:"entity_type"`
	EventType       string `yaml:"event_type"`
	ModelName       string `yaml:"model_name"`
	ModelVersion    string `yaml:"model_version"`
	ModelType       string `yaml:"model_type"`
	DetectorName    string `yaml:"detector_name"`
	DetectorVersion string `yaml:"detector_version"`
}

// Config is the full toolkit configuration. Credentials and endpoints are
// held here and passed to constructors; nothing reads them ambiently.
type Config struct {
	Region string `yaml:"region"`

	// Static credentials are optional; when absent the SDK's default
	// chain (env, shared config, IMDS) applies.
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`

	// Endpoint overrides the service endpoints (local stacks, tests).
	Endpoint string `yaml:"endpoint"`

	// S3Bucket receives uploaded training data.
	S3Bucket string `yaml:"s3_bucket"`
	// DataAccessRoleARN is assumed by the service to read training data.
	DataAccessRoleARN string `yaml:"data_access_role_arn"`

	LogLevel string `yaml:"log_level"`

	Project Project `yaml:"project"`
}

// Load reads an optional YAML file and then applies environment overrides.
// Pass an empty path to load from the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if cfg.Project.ModelType == "" {
		cfg.Project.ModelType = "ONLINE_FRAUD_INSIGHTS"
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setIfEnv(&c.Region, "AWS_REGION")
	setIfEnv(&c.Endpoint, "FRAUDKIT_ENDPOINT")
	setIfEnv(&c.S3Bucket, "FRAUDKIT_S3_BUCKET")
	setIfEnv(&c.DataAccessRoleARN, "FRAUDKIT_DATA_ACCESS_ROLE_ARN")
	setIfEnv(&c.LogLevel, "FRAUDKIT_LOG_LEVEL")
	setIfEnv(&c.Project.EntityType, "FRAUDKIT_ENTITY_TYPE")
	setIfEnv(&c.Project.EventType, "FRAUDKIT_EVENT_TYPE")
	setIfEnv(&c.Project.ModelName, "FRAUDKIT_MODEL_NAME")
	setIfEnv(&c.Project.ModelVersion, "FRAUDKIT_MODEL_VERSION")
	setIfEnv(&c.Project.ModelType, "FRAUDKIT_MODEL_TYPE")
	setIfEnv(&c.Project.DetectorName, "FRAUDKIT_DETECTOR_NAME")
	setIfEnv(&c.Project.DetectorVersion, "FRAUDKIT_DETECTOR_VERSION")
}

func setIfEnv(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

// Validate checks the fields every remote operation needs.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("config: region is required (AWS_REGION or config file)")
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("config: access_key_id and secret_access_key must be set together")
	}
	return nil
}

// SlogLevel maps the configured level string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AWSConfig resolves the SDK configuration with the configured region and
// optional static credentials.
func (c *Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("config: load aws config: %w", err)
	}
	return cfg, nil
}

// FraudDetectorClient builds the Fraud Detector client, honoring the
// endpoint override.
func (c *Config) FraudDetectorClient(ctx context.Context) (*frauddetector.Client, error) {
	awsCfg, err := c.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return frauddetector.NewFromConfig(awsCfg, func(o *frauddetector.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

// S3Client builds the S3 client, honoring the endpoint override.
func (c *Config) S3Client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := c.AWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
