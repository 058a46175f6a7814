package soil

import (
	"strconv"

	"github.com/ldor80/soil-moisture-simulation-working-new/internal/core"
)

// Parameters exposes the current tunables for the HUD panel.
func (e *Engine) Parameters() core.ParameterSnapshot {
	p := e.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.cfg.Rows),
				intParam("cols", "Cols", e.cfg.Cols),
				int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Water balance",
			Params: []core.Parameter{
				floatParam("diffusion_coefficient", "Diffusion coefficient", p.DiffusionCoefficient),
				floatParam("evapotranspiration_rate", "Evapotranspiration rate", p.EvapotranspirationRate),
				floatParam("irrigation_rate", "Irrigation rate", p.IrrigationRate),
				floatParam("moisture_threshold", "Moisture threshold", p.MoistureThreshold),
				floatParam("time_step", "Time step", p.TimeStep),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables. Dimensions and seed
// are fixed after construction, so only the water-balance floats appear.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "diffusion_coefficient", Label: "Diffusion coefficient", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "evapotranspiration_rate", Label: "Evapotranspiration rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "irrigation_rate", Label: "Irrigation rate", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "moisture_threshold", Label: "Moisture threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "time_step", Label: "Time step", Type: core.ParamTypeFloat, Step: 0.25, Min: 0.25, Max: 4, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a tunable by key, rejecting values that would
// break the parameter invariants. Intended to run between ticks.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		return false
	}
	switch key {
	case "diffusion_coefficient":
		e.cfg.Params.DiffusionCoefficient = value
	case "evapotranspiration_rate":
		e.cfg.Params.EvapotranspirationRate = value
	case "irrigation_rate":
		e.cfg.Params.IrrigationRate = value
	case "moisture_threshold":
		if value > 1 {
			return false
		}
		e.cfg.Params.MoistureThreshold = value
	case "time_step":
		if value == 0 {
			return false
		}
		e.cfg.Params.TimeStep = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
