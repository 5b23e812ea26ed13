package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yatoub/tych/internal/rng"
)

type Config struct {
	N          int     `yaml:"n"`
	Pendulums  int     `yaml:"pendulums"`
	NoiseLevel float64 `yaml:"noise_level"`
	DataDir    string  `yaml:"data_dir"`
	PlotPath   string  `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		N:          rng.DefaultN,
		Pendulums:  rng.DefaultPendulums,
		NoiseLevel: rng.DefaultNoise,
		DataDir:    ".tych",
		PlotPath:   "comparison.png",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
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

// Validate rejects values outside the generator's documented domain. Zero
// pendulums and non-positive n are legal degenerate inputs and pass.
func (c *Config) Validate() error {
	if c.Pendulums < 0 {
		return fmt.Errorf("pendulums must be >= 0, got %d", c.Pendulums)
	}
	if c.NoiseLevel < 0 {
		return fmt.Errorf("noise_level must be >= 0, got %f", c.NoiseLevel)
	}
	return nil
}
