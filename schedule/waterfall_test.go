package schedule

import "testing"

func TestWaterfallHistoryBounded(t *testing.T) {
	w := NewWaterfallHistory()
	for i := 0; i < maxWaterfallRows+20; i++ {
		w.Append(WaterfallRow{Magnitudes: []float64{float64(i)}})
	}
	rows := w.Rows()
	if len(rows) != maxWaterfallRows {
		t.Fatalf("len(Rows()) = %d, want %d", len(rows), maxWaterfallRows)
	}
	// oldest rows should have been evicted, so the first retained row's
	// magnitude should reflect the eviction offset.
	if rows[0].Magnitudes[0] != 20 {
		t.Fatalf("oldest retained row = %v, want magnitude 20", rows[0].Magnitudes[0])
	}
}
