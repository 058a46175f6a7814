package render

import (
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
)

// fillCellRGBA converts cell data into RGBA pixels in buf using the given
// color scheme. Tap and override markers come blended from soil.CellColor.
func fillCellRGBA(buf []byte, cells []core.Cell, scheme soil.ColorScheme) {
	for i, cell := range cells {
		col := soil.CellColor(cell, scheme)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
