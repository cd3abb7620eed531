package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_EmptyKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
}

func TestParseConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseConfig([]byte("max_steps: 250\nsensor_radius: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.MaxSteps)
	assert.Equal(t, 2, cfg.SensorRadius)
	assert.Equal(t, DefaultConfig.WaitThreshold, cfg.WaitThreshold)
	assert.Equal(t, DefaultConfig.MaxAgents, cfg.MaxAgents)
}

func TestParseConfig_InvalidValue(t *testing.T) {
	_, err := ParseConfig([]byte("wait_threshold: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wait_threshold")
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("max_steps: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"zero radius is valid", func(c *Config) { c.SensorRadius = 0 }, ""},
		{"zero steps", func(c *Config) { c.MaxSteps = 0 }, "max_steps"},
		{"negative radius", func(c *Config) { c.SensorRadius = -1 }, "sensor_radius"},
		{"zero wait threshold", func(c *Config) { c.WaitThreshold = 0 }, "wait_threshold"},
		{"zero agents", func(c *Config) { c.MaxAgents = 0 }, "max_agents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
