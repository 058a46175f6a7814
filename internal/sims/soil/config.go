package soil

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// SeedMode selects how initial moisture is assigned.
type SeedMode string

const (
	// SeedUniform assigns every cell the configured uniform moisture.
	SeedUniform SeedMode = "uniform"
	// SeedRandom draws independent uniform [0,1] moisture per cell.
	SeedRandom SeedMode = "random"
)

// Params holds the global tunables shared by all cells. All values must be
// finite and non-negative; the threshold additionally stays within [0, 1].
type Params struct {
	DiffusionCoefficient   float64 `yaml:"diffusion_coefficient"`
	EvapotranspirationRate float64 `yaml:"evapotranspiration_rate"`
	IrrigationRate         float64 `yaml:"irrigation_rate"`
	MoistureThreshold      float64 `yaml:"moisture_threshold"`

	// TimeStep is the tick duration multiplier applied to every rate.
	TimeStep float64 `yaml:"time_step"`
}

// Config controls the soil simulation dimensions and seeding.
type Config struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	Seed int64 `yaml:"seed"`

	SeedMode SeedMode `yaml:"seed_mode"`

	// UniformMoisturePercent is the uniform seed value expressed as a percent
	// in [0, 100]; it is divided by 100 before reaching the grid.
	UniformMoisturePercent float64 `yaml:"uniform_moisture_percent"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:                   20,
		Cols:                   20,
		Seed:                   1337,
		SeedMode:               SeedUniform,
		UniformMoisturePercent: 50,
		Params: Params{
			DiffusionCoefficient:   0.05,
			EvapotranspirationRate: 0.02,
			IrrigationRate:         0.05,
			MoistureThreshold:      0.3,
			TimeStep:               1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_mode"]; ok {
		switch SeedMode(v) {
		case SeedUniform, SeedRandom:
			c.SeedMode = SeedMode(v)
		}
	}
	if v, ok := cfg["uniform_moisture_percent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 100 {
			c.UniformMoisturePercent = parsed
		}
	}
	if v, ok := cfg["diffusion_coefficient"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DiffusionCoefficient = parsed
		}
	}
	if v, ok := cfg["evapotranspiration_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.EvapotranspirationRate = parsed
		}
	}
	if v, ok := cfg["irrigation_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.IrrigationRate = parsed
		}
	}
	if v, ok := cfg["moisture_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.MoistureThreshold = parsed
		}
	}
	if v, ok := cfg["time_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TimeStep = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML scenario file, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}
