package engine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of a simulation run.
type Config struct {
	// MaxSteps is the safety valve bounding the number of time steps.
	MaxSteps int `yaml:"max_steps"`
	// SensorRadius is the half-width of each agent's square sensing window.
	SensorRadius int `yaml:"sensor_radius"`
	// WaitThreshold is the number of consecutive waits that forces an
	// agent to replan toward its own goal.
	WaitThreshold int `yaml:"wait_threshold"`
	// MaxAgents caps the number of agents per run.
	MaxAgents int `yaml:"max_agents"`
}

// DefaultConfig is tuned for small room-scale grids: up to four agents
// with unit sensor radius, a hundred-step cap and the two-wait
// anti-deadlock nudge.
var DefaultConfig = Config{
	MaxSteps:      100,
	SensorRadius:  1,
	WaitThreshold: 2,
	MaxAgents:     4,
}

// ParseConfig unmarshals YAML configuration over the defaults and validates
// it. The caller owns reading the bytes; the core does no file I/O.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.SensorRadius < 0 {
		return fmt.Errorf("sensor_radius must not be negative, got %d", c.SensorRadius)
	}
	if c.WaitThreshold <= 0 {
		return fmt.Errorf("wait_threshold must be positive, got %d", c.WaitThreshold)
	}
	if c.MaxAgents <= 0 {
		return fmt.Errorf("max_agents must be positive, got %d", c.MaxAgents)
	}
	return nil
}
