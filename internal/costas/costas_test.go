package costas

import (
	"testing"

	"github.com/cwsl/ftcore/internal/spectral"
)

var ft8CostasArray = Array{
	Pattern:   []uint8{3, 1, 4, 0, 6, 5, 2},
	Positions: []int{0, 36, 72},
}

func TestSearchFindsSyntheticFrame(t *testing.T) {
	const nsps = 1920
	const numTones = 8
	const numRows = 90
	const freqBin = 40

	spec := &spectral.Spectrogram{NumBins: 200, HopSize: nsps}
	spec.Rows = make([][]float64, numRows)
	for r := range spec.Rows {
		spec.Rows[r] = make([]float64, spec.NumBins)
	}

	setTone := func(row, bin int) {
		if row >= 0 && row < numRows {
			spec.Rows[row][bin] = 1000
		}
	}

	for groupIdx, start := range ft8CostasArray.Positions {
		_ = groupIdx
		for k, tone := range ft8CostasArray.Pattern {
			setTone(start+k, freqBin+int(tone))
		}
	}
	// Zero out data symbols (already zero by construction).

	wrapped := &Spectrogram{Spectrogram: spec, FFTSize: nsps}
	candidates := Search(wrapped, ft8CostasArray, numTones, 0, float64(spec.NumBins-numTones)*float64(spectral.SampleRate)/float64(nsps), 1.0, 10)
	if len(candidates) == 0 {
		t.Fatalf("Search found no candidates on a synthetic frame")
	}

	top := candidates[0]
	gotRow := top.TimeOffsetSamples / spec.HopSize
	if diff := gotRow - 0; diff < -1 || diff > 1 {
		t.Errorf("top candidate time offset row = %d, want within 1 of 0", gotRow)
	}
	if diff := top.FreqBin - freqBin; diff < -1 || diff > 1 {
		t.Errorf("top candidate freq bin = %d, want within 1 of %d", top.FreqBin, freqBin)
	}
}
