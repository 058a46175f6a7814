//go:build !ebiten

package ui

import (
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
	"github.com/ldor80/soil-moisture-simulation-working-new/internal/sims/soil"
)

// HUD is a placeholder so headless builds compile without the ebiten tag.
type HUD struct{}

// NewHUD returns an inert HUD in headless builds.
func NewHUD(core.Sim, int, *soil.Tracker) *HUD { return &HUD{} }

// SetUnit is a no-op placeholder.
func (h *HUD) SetUnit(soil.MoistureUnit) {}

// Update is a no-op placeholder.
func (h *HUD) Update(int) {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, int, int) {}
