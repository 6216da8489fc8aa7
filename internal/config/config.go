package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	DefaultIntegrator = "rk4"
	DefaultOrbit      = "circular"
	DefaultTau        = 0.1
	DefaultTend       = 1.0
	DefaultSemiMajor  = 1.0
	DefaultEcc        = 0.6
	DefaultOutput     = "orbit.svg"
)

// Config describes one comparison run: which integrator, which orbit,
// which step sizes, and where the rendered artifact goes.
type Config struct {
	Integrator string    `yaml:"integrator"`
	Orbit      string    `yaml:"orbit"`
	Taus       []float64 `yaml:"taus"`
	Tend       float64   `yaml:"tend"`
	GM         float64   `yaml:"gm"`
	SemiMajor  float64   `yaml:"a"`
	Ecc        float64   `yaml:"e"`
	Output     string    `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Integrator: DefaultIntegrator,
		Orbit:      DefaultOrbit,
		Taus:       []float64{DefaultTau},
		Tend:       DefaultTend,
		GM:         orbit.GM,
		SemiMajor:  DefaultSemiMajor,
		Ecc:        DefaultEcc,
		Output:     DefaultOutput,
	}
}

// Load reads a YAML config, with defaults for any omitted field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// InitialState builds the starting state for the configured orbit.
func (c *Config) InitialState() (orbit.State, error) {
	switch c.Orbit {
	case "circular":
		return orbit.Circular(c.GM), nil
	case "elliptical":
		return orbit.Elliptical(c.GM, c.SemiMajor, c.Ecc), nil
	}
	return orbit.State{}, fmt.Errorf("unknown orbit: %s", c.Orbit)
}
