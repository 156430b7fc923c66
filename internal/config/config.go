// Package config holds the file-driven run configuration shared by the CLI
// commands. Values load from YAML on top of defaults; explicit command-line
// flags override the file.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes one simulation run.
type Config struct {
	Sim         string `yaml:"sim"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Seed        int64  `yaml:"seed"`
	Generations int    `yaml:"generations"`
	TPS         int    `yaml:"tps"`
	Parallel    bool   `yaml:"parallel"`

	Source SourceConfig `yaml:"source"`

	// Params passes sim-specific extras straight to the factory.
	Params map[string]string `yaml:"params"`
}

// SourceConfig positions the initial light emitter.
type SourceConfig struct {
	X        int   `yaml:"x"`
	Y        int   `yaml:"y"`
	Level    uint8 `yaml:"level"`
	Lifetime int   `yaml:"lifetime"`
}

// Default returns the configuration of the canonical demo run: a 30×20 mesh
// with a level-10 emitter at (10,10) that burns out after ten generations.
func Default() *Config {
	return &Config{
		Sim:         "light",
		Width:       30,
		Height:      20,
		Generations: 30,
		TPS:         10,
		Source: SourceConfig{
			X:        10,
			Y:        10,
			Level:    10,
			Lifetime: 10,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Validate rejects configurations no run could make sense of.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return errors.New("config: sim name required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: grid %dx%d is degenerate", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("config: negative generation count %d", c.Generations)
	}
	if c.TPS <= 0 {
		return errors.Errorf("config: tps %d must be positive", c.TPS)
	}
	return nil
}

// ToParams flattens the configuration into the string map consumed by sim
// factories. Sim-specific Params entries win over the flattened fields.
func (c *Config) ToParams() map[string]string {
	out := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"x":        strconv.Itoa(c.Source.X),
		"y":        strconv.Itoa(c.Source.Y),
		"level":    strconv.Itoa(int(c.Source.Level)),
		"lifetime": strconv.Itoa(c.Source.Lifetime),
	}
	if c.Parallel {
		out["parallel"] = "true"
	}
	for k, v := range c.Params {
		out[k] = v
	}
	return out
}
