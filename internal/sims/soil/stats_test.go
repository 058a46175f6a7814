package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	e := NewWithConfig(DefaultConfig())
	assert.Equal(t, Stats{}, e.Stats(), "uninitialized engine reports zeros")

	e = newTestEngine(t, 2, 2, 0.5)
	require.NoError(t, e.SetCellMoisture(0, 0, 1))
	require.NoError(t, e.ToggleTap(1, 1))

	s := e.Stats()
	assert.Equal(t, 0.625, s.MeanMoisture)
	assert.Equal(t, 1, s.ActiveTaps)
	assert.Equal(t, 2, s.Overrides)
}
