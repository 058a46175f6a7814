package render

import (
	"testing"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
)

func TestFillCellRGBA(t *testing.T) {
	cells := []core.Cell{
		{Moisture: 0},
		{Moisture: 1},
		{Moisture: 0.5, TapActive: true},
	}
	buf := make([]byte, 4*len(cells))
	fillCellRGBA(buf, cells, soil.SchemeGrayscale)

	// Dry cell renders white, saturated renders black.
	for c := 0; c < 3; c++ {
		if buf[c] != 255 {
			t.Fatalf("dry cell channel %d = %d, want 255", c, buf[c])
		}
		if buf[4+c] != 0 {
			t.Fatalf("wet cell channel %d = %d, want 0", c, buf[4+c])
		}
	}
	if buf[3] != 255 || buf[7] != 255 || buf[11] != 255 {
		t.Fatal("alpha must be opaque")
	}

	want := soil.CellColor(cells[2], soil.SchemeGrayscale)
	if buf[8] != want.R || buf[9] != want.G || buf[10] != want.B {
		t.Fatalf("tapped cell rendered (%d,%d,%d), want (%d,%d,%d)",
			buf[8], buf[9], buf[10], want.R, want.G, want.B)
	}
}
