package soil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"rows":                     "8",
		"cols":                     "12",
		"seed":                     "99",
		"seed_mode":                "random",
		"uniform_moisture_percent": "75",
		"diffusion_coefficient":    "0.12",
		"moisture_threshold":       "0.45",
		"time_step":                "0.5",
	})
	assert.Equal(t, 8, c.Rows)
	assert.Equal(t, 12, c.Cols)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, SeedRandom, c.SeedMode)
	assert.Equal(t, 75.0, c.UniformMoisturePercent)
	assert.Equal(t, 0.12, c.Params.DiffusionCoefficient)
	assert.Equal(t, 0.45, c.Params.MoistureThreshold)
	assert.Equal(t, 0.5, c.Params.TimeStep)
}

func TestFromMapRejectsInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"rows":                     "0",
		"cols":                     "nope",
		"seed_mode":                "checkerboard",
		"uniform_moisture_percent": "120",
		"diffusion_coefficient":    "-1",
		"moisture_threshold":       "1.5",
		"time_step":                "0",
	})
	assert.Equal(t, def, c, "invalid entries must fall back to defaults")
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := `
rows: 6
cols: 9
seed_mode: random
params:
  diffusion_coefficient: 0.2
  moisture_threshold: 0.35
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Rows)
	assert.Equal(t, 9, c.Cols)
	assert.Equal(t, SeedRandom, c.SeedMode)
	assert.Equal(t, 0.2, c.Params.DiffusionCoefficient)
	assert.Equal(t, 0.35, c.Params.MoistureThreshold)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultConfig().Seed, c.Seed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSetFloatParameterBounds(t *testing.T) {
	e := newTestEngine(t, 2, 2, 0.5)
	assert.True(t, e.SetFloatParameter("moisture_threshold", 0.8))
	assert.Equal(t, 0.8, e.Params().MoistureThreshold)

	assert.False(t, e.SetFloatParameter("moisture_threshold", 1.5))
	assert.False(t, e.SetFloatParameter("irrigation_rate", -0.1))
	assert.False(t, e.SetFloatParameter("time_step", 0))
	assert.False(t, e.SetFloatParameter("unknown", 1))
	assert.Equal(t, 0.8, e.Params().MoistureThreshold)
}
