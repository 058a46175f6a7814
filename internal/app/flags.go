package app

import "flag"

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim         string
	Scale       int
	TPS         int
	Seed        int64
	Rows        int
	Cols        int
	SeedMode    string
	MoisturePct float64
	Scheme      string
	ConfigPath  string
	Debug       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "soil",
		Scale:       24,
		TPS:         4,
		Seed:        42,
		Rows:        20,
		Cols:        20,
		SeedMode:    "uniform",
		MoisturePct: 50,
		Scheme:      "default",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.StringVar(&c.SeedMode, "mode", c.SeedMode, "initial moisture mode: uniform or random")
	fs.Float64Var(&c.MoisturePct, "moisture", c.MoisturePct, "uniform initial moisture percent [0,100]")
	fs.StringVar(&c.Scheme, "scheme", c.Scheme, "color scheme: default, blue or grayscale")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML scenario file layered over defaults")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}
