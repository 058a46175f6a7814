//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	rowHeight      = 18
	groupSpacing   = 10
	buttonSize     = 12
	buttonGap      = 4
	historyHeight  = 48
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type hudControlState struct {
	control    core.ParameterControl
	value      string
	floatValue float64
	hasValue   bool
	top        int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
}

// HUD renders the parameter panel and observed-cell history to the right of
// the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int

	tracker *soil.Tracker
	unit    soil.MoistureUnit

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width. The
// tracker supplies observed-cell history; it may be nil.
func NewHUD(sim core.Sim, width int, tracker *soil.Tracker) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, tracker: tracker, unit: soil.UnitPercentage}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// SetUnit switches the display unit for moisture readouts.
func (h *HUD) SetUnit(unit soil.MoistureUnit) {
	if h != nil {
		h.unit = unit
	}
}

// Update refreshes the cached parameter snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawHistory(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layoutControls() {
	top := panelPadding + headerBaseline + groupSpacing
	for i := range h.controls {
		state := &h.controls[i]
		state.top = top
		right := h.width - panelPadding
		state.plusRect = image.Rect(right-buttonSize, top, right, top+buttonSize)
		state.minusRect = image.Rect(right-2*buttonSize-buttonGap, top, right-buttonSize-buttonGap, top+buttonSize)
		top += rowHeight
	}
}

func (h *HUD) refreshControlValues() {
	if len(h.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := paramMap[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = fmt.Sprintf("%.2f", parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.floatSetter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = fmt.Sprintf("%.2f", target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Soil Controls", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + headerBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 60, G: 60, B: 70, A: 255})
	h.panel.DrawImage(h.pixel, op)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + rect.Dy() - 2
	text.Draw(h.panel, label, face, tx, ty, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

// drawHistory paints the observed cell readout and a bar chart of its
// bounded moisture history at the bottom of the panel.
func (h *HUD) drawHistory(panelHeight int) {
	if h.tracker == nil {
		return
	}
	face := basicfont.Face7x13
	baseY := panelHeight - historyHeight - panelPadding
	row, col, ok := h.tracker.Selection()
	if !ok {
		text.Draw(h.panel, "No cell observed", face, panelPadding, baseY, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	samples := h.tracker.Samples()
	label := fmt.Sprintf("Cell (%d,%d)", row, col)
	if n := len(samples); n > 0 {
		label += " " + soil.FormatMoisture(samples[n-1].Moisture, h.unit)
	}
	text.Draw(h.panel, label, face, panelPadding, baseY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(samples) == 0 || h.pixel == nil {
		return
	}
	chartWidth := h.width - 2*panelPadding
	barWidth := chartWidth / len(samples)
	if barWidth < 1 {
		barWidth = 1
	}
	for i, s := range samples {
		barHeight := int(s.Moisture * float64(historyHeight-4))
		if barHeight < 1 {
			barHeight = 1
		}
		x := panelPadding + i*barWidth
		y := panelHeight - panelPadding - barHeight
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(barWidth-1), float64(barHeight))
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 70, G: 130, B: 220, A: 255})
		h.panel.DrawImage(h.pixel, op)
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
