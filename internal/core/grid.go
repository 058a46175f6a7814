package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Sentinel errors for caller-input mistakes. All are recoverable: the caller
// corrects the argument and retries.
var (
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrInvalidMoisture   = errors.New("invalid moisture value")
	ErrOutOfBounds       = errors.New("cell index out of bounds")
	ErrUninitializedGrid = errors.New("grid not initialized")
)

// Cell is one grid location. Moisture is normalized saturation in [0, 1];
// every mutation path clamps it back into that range.
type Cell struct {
	Moisture       float64
	TapActive      bool
	OverrideActive bool
}

// Grid stores a 2D field of cells in row-major order. Dimensions are fixed at
// construction; changing them means building a new grid.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

// NewUniformGrid allocates a grid with every cell set to the given moisture.
func NewUniformGrid(rows, cols int, moisture float64) (*Grid, error) {
	if moisture < 0 || moisture > 1 {
		return nil, fmt.Errorf("%w: uniform seed %v outside [0,1]", ErrInvalidMoisture, moisture)
	}
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		g.cells[i].Moisture = moisture
	}
	return g, nil
}

// NewRandomGrid allocates a grid with independent uniform [0,1] moisture per
// cell. A nil rng falls back to the shared global source; tests pass a seeded
// one for reproducibility.
func NewRandomGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	g, err := newGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.cells {
		if rng != nil {
			g.cells[i].Moisture = rng.Float64()
		} else {
			g.cells[i].Moisture = rand.Float64()
		}
	}
	return g, nil
}

func newGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}, nil
}

// Cells exposes the backing slice so the engine can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns a copy of the cell at (row, col).
func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}
	return g.cells[g.Index(row, col)], nil
}

// SetMoisture writes a clamped moisture value at (row, col). The grid holds no
// simulation semantics; tap and override flags are untouched here.
func (g *Grid) SetMoisture(row, col int, value float64) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, g.Rows, g.Cols)
	}
	g.cells[g.Index(row, col)].Moisture = ClampMoisture(value)
	return nil
}

// ClampMoisture clamps a moisture value into [0, 1].
func ClampMoisture(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
