package soil

import (
	"fmt"
	"image/color"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
)

// ColorScheme selects the moisture-to-color mapping used by renderers.
type ColorScheme string

const (
	SchemeDefault   ColorScheme = "default"
	SchemeBlue      ColorScheme = "blue"
	SchemeGrayscale ColorScheme = "grayscale"
)

// MoistureUnit selects how raw [0,1] moisture is presented.
type MoistureUnit string

const (
	UnitPercentage MoistureUnit = "percentage"
	UnitVolumetric MoistureUnit = "volumetric"
)

// volumetricCapacity converts normalized saturation to a volumetric display
// value. It is a fixed display constant, not a physical soil parameter.
const volumetricCapacity = 0.5

// ConvertMoisture maps a raw [0,1] moisture to the requested display unit.
func ConvertMoisture(m float64, unit MoistureUnit) float64 {
	if unit == UnitVolumetric {
		return m * volumetricCapacity
	}
	return m * 100
}

// FormatMoisture renders a moisture value with its unit suffix.
func FormatMoisture(m float64, unit MoistureUnit) string {
	if unit == UnitVolumetric {
		return fmt.Sprintf("%.3f", ConvertMoisture(m, unit))
	}
	return fmt.Sprintf("%.1f%%", ConvertMoisture(m, unit))
}

// MoistureColor maps a moisture value to a color under the given scheme:
// default sweeps hue 0..240 at full saturation, blue fixes hue 240 and
// darkens with moisture, grayscale darkens from white to black.
func MoistureColor(m float64, scheme ColorScheme) color.RGBA {
	m = core.ClampMoisture(m)
	switch scheme {
	case SchemeBlue:
		return hslToRGB(240, 1, 1-m/2)
	case SchemeGrayscale:
		return hslToRGB(0, 0, 1-m)
	default:
		return hslToRGB(240*m, 1, 0.5)
	}
}

// CellColor maps a full cell to a color: the base moisture color with a tap
// tint when irrigation is running and an override marker blend on top.
func CellColor(cell core.Cell, scheme ColorScheme) color.RGBA {
	base := MoistureColor(cell.Moisture, scheme)
	if cell.TapActive {
		base = blendColors(base, color.RGBA{R: 30, G: 144, B: 255, A: 255}, 0.25)
	}
	if cell.OverrideActive {
		base = blendColors(base, color.RGBA{R: 255, G: 165, B: 0, A: 255}, 0.2)
	}
	return base
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: uint8(float64(base.A)*inv + float64(overlay.A)*w + 0.5),
	}
}

// hslToRGB converts hue [0,360), saturation [0,1], lightness [0,1] to RGBA.
func hslToRGB(h, s, l float64) color.RGBA {
	if s == 0 {
		v := uint8(l*255 + 0.5)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r := hueToChannel(p, q, hk+1.0/3)
	g := hueToChannel(p, q, hk)
	b := hueToChannel(p, q, hk-1.0/3)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 255,
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
