package soil

// historyCap bounds the retained samples per selection; the oldest entry is
// dropped first once the window is full.
const historyCap = 20

// Sample is one {tick, moisture} observation of the selected cell.
type Sample struct {
	Tick     int
	Moisture float64
}

// Tracker records a bounded moisture history for one externally selected
// cell. It lives in the observer layer: the driver reads the cell after each
// completed tick and feeds the value in. History belongs to the selection,
// not to the cell — switching cells discards what was accumulated.
type Tracker struct {
	row, col int
	selected bool
	samples  []Sample
}

// NewTracker returns an empty tracker with no selection.
func NewTracker() *Tracker {
	return &Tracker{samples: make([]Sample, 0, historyCap)}
}

// Select designates the observed cell and clears any accumulated history,
// including when reselecting the same cell.
func (t *Tracker) Select(row, col int) {
	t.row = row
	t.col = col
	t.selected = true
	t.samples = t.samples[:0]
}

// Clear drops the selection and its history.
func (t *Tracker) Clear() {
	t.selected = false
	t.samples = t.samples[:0]
}

// Selection returns the observed cell coordinates, if any.
func (t *Tracker) Selection() (row, col int, ok bool) {
	return t.row, t.col, t.selected
}

// Record appends a sample for the current selection, evicting the oldest one
// beyond the window capacity. It is a no-op with no selection.
func (t *Tracker) Record(tick int, moisture float64) {
	if !t.selected {
		return
	}
	if len(t.samples) == historyCap {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:historyCap-1]
	}
	t.samples = append(t.samples, Sample{Tick: tick, Moisture: moisture})
}

// Samples returns a copy of the retained history in increasing tick order.
func (t *Tracker) Samples() []Sample {
	out := make([]Sample, len(t.samples))
	copy(out, t.samples)
	return out
}
