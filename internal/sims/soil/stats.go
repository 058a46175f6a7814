package soil

// Stats aggregates one grid snapshot for logging and sweep reports.
type Stats struct {
	MeanMoisture float64
	ActiveTaps   int
	Overrides    int
}

// Stats summarizes the current grid. Returns the zero value before Initialize.
func (e *Engine) Stats() Stats {
	if !e.initialized || len(e.cur) == 0 {
		return Stats{}
	}
	var s Stats
	for _, cell := range e.cur {
		s.MeanMoisture += cell.Moisture
		if cell.TapActive {
			s.ActiveTaps++
		}
		if cell.OverrideActive {
			s.Overrides++
		}
	}
	s.MeanMoisture /= float64(len(e.cur))
	return s
}
