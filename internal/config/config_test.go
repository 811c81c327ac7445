package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fraudkit/fraudkit/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfigFile(t, `
region: us-east-1
s3_bucket: training-data
data_access_role_arn: arn:aws:iam::123456789012:role/afd-access
log_level: debug
project:
  entity_type: customer
  event_type: transaction
  model_name: txn_model
  detector_name: txn_detector
`)
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "training-data", cfg.S3Bucket)
	assert.Equal(t, "customer", cfg.Project.EntityType)
	assert.Equal(t, "txn_model", cfg.Project.ModelName)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
region: us-east-1
project:
  model_name: from_file
`)
	t.Setenv("FRAUDKIT_MODEL_NAME", "from_env")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Project.ModelName)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("AWS_REGION", "us-west-2")
	t.Setenv("FRAUDKIT_ENTITY_TYPE", "customer")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "customer", cfg.Project.EntityType)
}

func TestLoad_DefaultsModelType(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "ONLINE_FRAUD_INSIGHTS", cfg.Project.ModelType)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "region: [unterminated")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	assert.Error(t, cfg.Validate())

	cfg.Region = "us-east-1"
	assert.NoError(t, cfg.Validate())

	cfg.AccessKeyID = "AKIA..."
	assert.Error(t, cfg.Validate())

	cfg.SecretAccessKey = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"INFO":    slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &config.Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), "level %q", in)
	}
}
