// Package costas implements the Costas-array sync search shared by the FT8
// and JS8 codecs (spec §4.5): correlate a known tone sequence against a
// spectrogram, refine the frequency estimate, and deduplicate candidates.
package costas

import (
	"math"
	"sort"

	"github.com/cwsl/ftcore/internal/spectral"
)

// DefaultMinFreqHz and DefaultMaxFreqHz bound the default search band.
const (
	DefaultMinFreqHz = 200.0
	DefaultMaxFreqHz = 3000.0
	DefaultThreshold = 4.0
)

// Array describes where a protocol's Costas sync groups sit in the frame and
// what tone pattern they carry.
type Array struct {
	Pattern   []uint8 // tone index per position within one sync group
	Positions []int   // starting symbol index of each sync group occurrence
}

// Candidate is a proposed frame start (spec §3 SyncCandidate).
type Candidate struct {
	TimeOffsetSamples int
	FreqBin           int
	RefinedFreqHz     float64
	Score             float64
}

// Search scans (t, f) over the spectrogram for the Costas array within
// [minFreqHz, maxFreqHz], scoring each position by normalized signal vs.
// background tone power (spec §4.5), returning candidates above threshold
// sorted descending and truncated to maxCandidates.
func Search(spec *Spectrogram, arr Array, numTones int, minFreqHz, maxFreqHz, threshold float64, maxCandidates int) []Candidate {
	n := spec.FFTSize
	minBin := spectral.BinForFrequency(minFreqHz, n)
	maxBin := spectral.BinForFrequency(maxFreqHz, n) - numTones
	if minBin < 0 {
		minBin = 0
	}

	numRows := len(spec.Rows)
	var candidates []Candidate
	seen := make(map[[2]int]bool)

	for t := 0; t < numRows; t++ {
		for f := minBin; f <= maxBin; f++ {
			signal, background := scoreAt(spec, arr, numTones, t, f)
			score := signal / (background + 1e-9)
			if score < threshold {
				continue
			}
			key := [2]int{t, f}
			if seen[key] {
				continue
			}
			seen[key] = true

			refined := refineFrequency(spec, arr, numTones, t, f)
			candidates = append(candidates, Candidate{
				TimeOffsetSamples: t * spec.HopSize,
				FreqBin:           f,
				RefinedFreqHz:     refined,
				Score:             score,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
	if maxCandidates > 0 && len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// Spectrogram is the subset of spectral.Spectrogram Search needs, plus the
// FFT size used to build it (needed to map Hz to bins).
type Spectrogram struct {
	*spectral.Spectrogram
	FFTSize int
}

// scoreAt sums signal-tone power across the 21 (for FT8) sync positions and
// the background power of the seven non-signal tones at each position, per
// spec §4.5.
func scoreAt(spec *Spectrogram, arr Array, numTones, t, f int) (signal, background float64) {
	for _, groupStart := range arr.Positions {
		for k, tone := range arr.Pattern {
			row := t + groupStart + k
			for bin := 0; bin < numTones; bin++ {
				p := spec.Power(row, f+bin)
				if bin == int(tone) {
					signal += p
				} else {
					background += p
				}
			}
		}
	}
	return signal, background
}

// refineFrequency performs parabolic peak interpolation at each of the
// Costas sync positions and averages the fractional-bin offset (spec §4.5).
func refineFrequency(spec *Spectrogram, arr Array, numTones, t, f int) float64 {
	var totalOffset float64
	var count int
	for _, groupStart := range arr.Positions {
		for k, tone := range arr.Pattern {
			row := t + groupStart + k
			bin := f + int(tone)
			left := spec.Power(row, bin-1)
			center := spec.Power(row, bin)
			right := spec.Power(row, bin+1)
			denom := left - 2*center + right
			if denom == 0 {
				continue
			}
			offset := 0.5 * (left - right) / denom
			if math.IsNaN(offset) || math.Abs(offset) > 1 {
				continue
			}
			totalOffset += offset
			count++
		}
	}
	baseFreq := float64(f) * float64(spectral.SampleRate) / float64(spec.FFTSize)
	binHz := float64(spectral.SampleRate) / float64(spec.FFTSize)
	if count == 0 {
		return baseFreq
	}
	return baseFreq + (totalOffset/float64(count))*binHz
}
