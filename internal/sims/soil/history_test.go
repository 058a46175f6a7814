package soil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Observing a cell across 25 ticks retains exactly the 20 most recent
// samples in increasing tick order.
func TestHistoryBounded(t *testing.T) {
	e := newTestEngine(t, 2, 2, 0.8)
	p := e.Params()
	p.EvapotranspirationRate = 0.01
	e.SetParams(p)

	tracker := NewTracker()
	tracker.Select(1, 0)

	for i := 0; i < 25; i++ {
		require.NoError(t, e.Step())
		cell, err := e.CellAt(1, 0)
		require.NoError(t, err)
		tracker.Record(e.Tick(), cell.Moisture)
	}

	samples := tracker.Samples()
	require.Len(t, samples, 20)
	require.Equal(t, 6, samples[0].Tick, "oldest retained sample")
	require.Equal(t, 25, samples[len(samples)-1].Tick, "newest retained sample")
	for i := 1; i < len(samples); i++ {
		require.Greater(t, samples[i].Tick, samples[i-1].Tick)
	}
}

// History belongs to the selection, not the cell: switching the observed
// cell — or reselecting the same one — discards accumulated samples.
func TestHistoryClearedOnReselect(t *testing.T) {
	tracker := NewTracker()
	tracker.Select(0, 0)
	tracker.Record(1, 0.5)
	tracker.Record(2, 0.4)
	require.Len(t, tracker.Samples(), 2)

	tracker.Select(1, 1)
	require.Empty(t, tracker.Samples(), "switching selection must clear history")
	row, col, ok := tracker.Selection()
	require.True(t, ok)
	require.Equal(t, 1, row)
	require.Equal(t, 1, col)

	tracker.Record(3, 0.7)
	tracker.Select(1, 1)
	require.Empty(t, tracker.Samples(), "reselecting the same cell also clears history")
}

func TestTrackerWithoutSelection(t *testing.T) {
	tracker := NewTracker()
	tracker.Record(1, 0.5)
	require.Empty(t, tracker.Samples())

	tracker.Select(0, 0)
	tracker.Record(1, 0.5)
	tracker.Clear()
	require.Empty(t, tracker.Samples())
	_, _, ok := tracker.Selection()
	require.False(t, ok)
}
