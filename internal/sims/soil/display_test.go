package soil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
)

func TestMoistureColorEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		scheme ColorScheme
		m      float64
		want   color.RGBA
	}{
		{"default dry is red", SchemeDefault, 0, color.RGBA{255, 0, 0, 255}},
		{"default mid is green", SchemeDefault, 0.5, color.RGBA{0, 255, 0, 255}},
		{"default wet is blue", SchemeDefault, 1, color.RGBA{0, 0, 255, 255}},
		{"blue dry is white", SchemeBlue, 0, color.RGBA{255, 255, 255, 255}},
		{"blue wet is blue", SchemeBlue, 1, color.RGBA{0, 0, 255, 255}},
		{"grayscale dry is white", SchemeGrayscale, 0, color.RGBA{255, 255, 255, 255}},
		{"grayscale wet is black", SchemeGrayscale, 1, color.RGBA{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MoistureColor(tc.m, tc.scheme))
		})
	}
}

func TestMoistureColorClampsInput(t *testing.T) {
	assert.Equal(t, MoistureColor(0, SchemeGrayscale), MoistureColor(-3, SchemeGrayscale))
	assert.Equal(t, MoistureColor(1, SchemeGrayscale), MoistureColor(42, SchemeGrayscale))
}

func TestCellColorMarkers(t *testing.T) {
	plain := CellColor(core.Cell{Moisture: 0.5}, SchemeGrayscale)
	tapped := CellColor(core.Cell{Moisture: 0.5, TapActive: true}, SchemeGrayscale)
	overridden := CellColor(core.Cell{Moisture: 0.5, OverrideActive: true}, SchemeGrayscale)

	assert.Equal(t, MoistureColor(0.5, SchemeGrayscale), plain)
	assert.NotEqual(t, plain, tapped, "tap tint must be visible")
	assert.NotEqual(t, plain, overridden, "override marker must be visible")
	assert.NotEqual(t, tapped, overridden)
}

func TestConvertMoisture(t *testing.T) {
	assert.Equal(t, 42.0, ConvertMoisture(0.42, UnitPercentage))
	assert.Equal(t, 0.21, ConvertMoisture(0.42, UnitVolumetric))
	assert.Equal(t, "100.0%", FormatMoisture(1, UnitPercentage))
	assert.Equal(t, "0.500", FormatMoisture(1, UnitVolumetric))
}
