//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/render"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/ui"
)

// hudWidth is the pixel width of the parameter panel.
const hudWidth = 220

// moistureWheelStep is the per-notch moisture change when scrolling on a cell.
const moistureWheelStep = 0.05

// cellController covers the per-cell operations a sim may expose for manual
// interaction. The soil engine implements all of them.
type cellController interface {
	CellAt(row, col int) (core.Cell, error)
	SetCellMoisture(row, col int, value float64) error
	ToggleTap(row, col int) error
	ClearOverride(row, col int) error
	Tick() int
}

// Game adapts a grid simulation to the ebiten.Game interface and owns the
// tick cadence; the engine never schedules its own steps.
type Game struct {
	sim     core.Sim
	ctrl    cellController
	painter *render.GridPainter
	hud     *ui.HUD
	tracker *soil.Tracker
	logger  *zap.Logger

	scheme soil.ColorScheme
	unit   soil.MoistureUnit

	timer    *core.FixedStep
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The tick rate is
// decoupled from the frame rate via a fixed-step timer.
func New(sim core.Sim, scale, tps int, seed int64, scheme soil.ColorScheme, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	tracker := soil.NewTracker()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		hud:     ui.NewHUD(sim, hudWidth, tracker),
		tracker: tracker,
		logger:  logger,
		scheme:  scheme,
		unit:    soil.UnitPercentage,
		timer:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
	if ctrl, ok := sim.(cellController); ok {
		g.ctrl = ctrl
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tracker.Clear()
	g.tickOnce = false
	g.logger.Info("simulation reset", zap.Int64("seed", seed))
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.cycleScheme()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.toggleUnit()
	}

	g.handleCellInput()
	g.hud.Update(g.sim.Size().W * g.scale)

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		if err := g.sim.Step(); err != nil {
			return err
		}
		g.tickOnce = false
		g.recordObserved()
	}
	return nil
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scheme, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// handleCellInput maps mouse actions over the grid onto engine operations:
// left click toggles the tap, right click clears the override, shift+left
// selects the observed cell, and the wheel nudges moisture.
func (g *Game) handleCellInput() {
	if g.ctrl == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	col := mx / g.scale
	row := my / g.scale
	size := g.sim.Size()
	if col < 0 || col >= size.W || row < 0 || row >= size.H {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
			g.tracker.Select(row, col)
			g.logger.Debug("observing cell", zap.Int("row", row), zap.Int("col", col))
			return
		}
		if err := g.ctrl.ToggleTap(row, col); err == nil {
			g.logger.Debug("tap toggled", zap.Int("row", row), zap.Int("col", col))
		}
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if err := g.ctrl.ClearOverride(row, col); err == nil {
			g.logger.Debug("override cleared", zap.Int("row", row), zap.Int("col", col))
		}
		return
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		cell, err := g.ctrl.CellAt(row, col)
		if err != nil {
			return
		}
		target := cell.Moisture + moistureWheelStep*wheelY
		if err := g.ctrl.SetCellMoisture(row, col, target); err == nil {
			g.logger.Debug("moisture set", zap.Int("row", row), zap.Int("col", col), zap.Float64("value", target))
		}
	}
}

func (g *Game) recordObserved() {
	if g.ctrl == nil {
		return
	}
	row, col, ok := g.tracker.Selection()
	if !ok {
		return
	}
	cell, err := g.ctrl.CellAt(row, col)
	if err != nil {
		return
	}
	g.tracker.Record(g.ctrl.Tick(), cell.Moisture)
}

func (g *Game) cycleScheme() {
	switch g.scheme {
	case soil.SchemeDefault:
		g.scheme = soil.SchemeBlue
	case soil.SchemeBlue:
		g.scheme = soil.SchemeGrayscale
	default:
		g.scheme = soil.SchemeDefault
	}
}

func (g *Game) toggleUnit() {
	if g.unit == soil.UnitPercentage {
		g.unit = soil.UnitVolumetric
	} else {
		g.unit = soil.UnitPercentage
	}
	g.hud.SetUnit(g.unit)
}
