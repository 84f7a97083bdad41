package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "data", cfg.DataDir)
	assert.NotEmpty(t, cfg.AdminSecret)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("LEARNHUB_DATA_DIR", "/tmp/lh")
	t.Setenv("LEARNHUB_ADMIN_SECRET", "s3cret!")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "/tmp/lh", cfg.DataDir)
	require.Equal(t, "s3cret!", cfg.AdminSecret)
}

func TestParseEnv_EmptyKeepsDefaults(t *testing.T) {
	t.Setenv("LEARNHUB_DATA_DIR", "")
	t.Setenv("LEARNHUB_ADMIN_SECRET", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, "02plataforma!", cfg.AdminSecret)
}
