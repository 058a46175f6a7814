// Package soil implements the soil-moisture simulation engine: a rectangular
// grid of cells whose moisture evolves per tick under orthogonal-neighbor
// diffusion, evapotranspiration, and threshold-triggered irrigation, with
// per-cell manual overrides.
package soil

import (
	"fmt"
	"math/rand/v2"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
)

// Engine owns a grid and a tick clock and advances them one step at a time.
// It performs no internal scheduling; an external driver decides when Step
// runs. Not safe for concurrent use.
type Engine struct {
	cfg Config

	rows, cols int
	cur        []core.Cell
	nxt        []core.Cell
	tick       int

	initialized bool
	rng         *rand.Rand
}

// New returns a soil simulation with the provided dimensions using defaults.
// Initialize must be called before stepping.
func New(rows, cols int) *Engine {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options.
// The grid is not allocated until Initialize.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		rng: core.NewRNG(cfg.Seed).Source(),
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "soil" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Cols, H: e.cfg.Rows} }

// Cells exposes the current (post-tick) cell buffer.
func (e *Engine) Cells() []core.Cell { return e.cur }

// Tick returns the number of completed steps since the last Initialize.
func (e *Engine) Tick() int { return e.tick }

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetParams replaces the tunables. Intended to be called between ticks.
func (e *Engine) SetParams(p Params) { e.cfg.Params = p }

// Params returns the current tunables.
func (e *Engine) Params() Params { return e.cfg.Params }

// Initialize allocates the grid per the configured seed mode and resets the
// tick clock to zero. It replaces any previous grid wholesale.
func (e *Engine) Initialize() error {
	var grid *core.Grid
	var err error
	switch e.cfg.SeedMode {
	case SeedRandom:
		grid, err = core.NewRandomGrid(e.cfg.Rows, e.cfg.Cols, e.rng)
	default:
		grid, err = core.NewUniformGrid(e.cfg.Rows, e.cfg.Cols, e.cfg.UniformMoisturePercent/100)
	}
	if err != nil {
		return err
	}
	e.rows = grid.Rows
	e.cols = grid.Cols
	e.cur = grid.Cells()
	e.nxt = make([]core.Cell, len(e.cur))
	e.tick = 0
	e.initialized = true
	return nil
}

// Reset reinitializes the simulation with the provided seed. A zero seed
// keeps the configured one. An invalid config leaves the engine
// uninitialized; the next Step reports it.
func (e *Engine) Reset(seed int64) {
	if seed != 0 {
		e.cfg.Seed = seed
	}
	e.rng = core.NewRNG(e.cfg.Seed).Source()
	if err := e.Initialize(); err != nil {
		e.initialized = false
	}
}

// Step advances the simulation by one tick. All neighbor reads use the
// pre-tick buffer; the new state becomes visible only when the buffers swap,
// so callers never observe a partially updated grid.
func (e *Engine) Step() error {
	if !e.initialized {
		return core.ErrUninitializedGrid
	}
	p := e.cfg.Params
	dt := p.TimeStep
	rows, cols := e.rows, e.cols

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			cell := e.cur[idx]

			if !cell.OverrideActive {
				cell.TapActive = cell.Moisture < p.MoistureThreshold
			}

			m := cell.Moisture
			if cell.TapActive {
				m += p.IrrigationRate * dt
			} else {
				m -= p.EvapotranspirationRate * dt
			}

			// Missing neighbors at edges contribute nothing; the reduced
			// inbound diffusion there is intentional.
			var flux float64
			if r > 0 {
				flux += p.DiffusionCoefficient * (e.cur[idx-cols].Moisture - cell.Moisture)
			}
			if r < rows-1 {
				flux += p.DiffusionCoefficient * (e.cur[idx+cols].Moisture - cell.Moisture)
			}
			if c > 0 {
				flux += p.DiffusionCoefficient * (e.cur[idx-1].Moisture - cell.Moisture)
			}
			if c < cols-1 {
				flux += p.DiffusionCoefficient * (e.cur[idx+1].Moisture - cell.Moisture)
			}
			m += flux * dt

			cell.Moisture = core.ClampMoisture(m)
			e.nxt[idx] = cell
		}
	}

	e.cur, e.nxt = e.nxt, e.cur
	e.tick++
	return nil
}

// CellAt returns a copy of the cell at (row, col).
func (e *Engine) CellAt(row, col int) (core.Cell, error) {
	if err := e.checkCell(row, col); err != nil {
		return core.Cell{}, err
	}
	return e.cur[row*e.cols+col], nil
}

// SetCellMoisture writes a clamped moisture value and claims the override for
// that cell: the automatic threshold rule stops governing its tap until
// ClearOverride.
func (e *Engine) SetCellMoisture(row, col int, value float64) error {
	if err := e.checkCell(row, col); err != nil {
		return err
	}
	cell := &e.cur[row*e.cols+col]
	cell.Moisture = core.ClampMoisture(value)
	cell.OverrideActive = true
	return nil
}

// ToggleTap flips the tap state at (row, col) and claims the override.
func (e *Engine) ToggleTap(row, col int) error {
	if err := e.checkCell(row, col); err != nil {
		return err
	}
	cell := &e.cur[row*e.cols+col]
	cell.TapActive = !cell.TapActive
	cell.OverrideActive = true
	return nil
}

// ClearOverride returns the cell to automatic control. Tap and moisture are
// left unchanged until the next Step recomputes the tap decision.
func (e *Engine) ClearOverride(row, col int) error {
	if err := e.checkCell(row, col); err != nil {
		return err
	}
	e.cur[row*e.cols+col].OverrideActive = false
	return nil
}

func (e *Engine) checkCell(row, col int) error {
	if !e.initialized {
		return core.ErrUninitializedGrid
	}
	if row < 0 || row >= e.rows || col < 0 || col >= e.cols {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", core.ErrOutOfBounds, row, col, e.rows, e.cols)
	}
	return nil
}

func init() {
	core.Register("soil", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
