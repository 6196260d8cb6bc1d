// Package spectral builds the symbol-rate spectrogram the Costas correlator
// searches (spec §4.4): a Hann-windowed FFT, one row per symbol period, at a
// fixed 12 kHz sample rate shared by both codecs.
package spectral

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// SampleRate is the fixed audio sample rate for both FT8 and JS8 (spec §4.4).
const SampleRate = 12000

const epsilon = 1e-12

// Spectrogram is a sequence of power rows, one per symbol period, each
// covering bins [0, N/2) of an N-point FFT.
type Spectrogram struct {
	Rows    [][]float64
	NumBins int
	HopSize int // samples per row (== symbol period for sync search)
}

// Build slides a Hann window of size N (samples per symbol) over samples
// with hop N (no overlap), producing one power row per symbol period, as
// spec §4.4 requires for the sync-search spectrogram.
func Build(samples []float32, n int) *Spectrogram {
	return build(samples, n, n)
}

// BuildOverlapped slides a Hann window of size n with 50% overlap (hop n/2),
// the display-oriented waterfall spec §4.4 allows an implementation to also
// expose.
func BuildOverlapped(samples []float32, n int) *Spectrogram {
	hop := n / 2
	if hop < 1 {
		hop = 1
	}
	return build(samples, n, hop)
}

func build(samples []float32, n, hop int) *Spectrogram {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	win := window.Hann(ones)
	fft := fourier.NewFFT(n)
	numBins := n / 2

	var rows [][]float64
	buf := make([]float64, n)
	for start := 0; start+n <= len(samples); start += hop {
		for i := 0; i < n; i++ {
			buf[i] = float64(samples[start+i]) * win[i]
		}
		coeffs := fft.Coefficients(nil, buf)
		row := make([]float64, numBins)
		for k := 0; k < numBins; k++ {
			c := coeffs[k]
			row[k] = real(c)*real(c) + imag(c)*imag(c) + epsilon
		}
		rows = append(rows, row)
	}

	return &Spectrogram{Rows: rows, NumBins: numBins, HopSize: hop}
}

// Power returns the power at (row, bin), or 0 outside bounds.
func (s *Spectrogram) Power(row, bin int) float64 {
	if row < 0 || row >= len(s.Rows) {
		return 0
	}
	if bin < 0 || bin >= s.NumBins {
		return 0
	}
	return s.Rows[row][bin]
}

// ToneSpacing returns the FSK tone spacing in Hz for a given symbol period
// nsps, at the fixed 12 kHz sample rate (spec §4.4: "tone spacing = 12000 /
// nsps").
func ToneSpacing(nsps int) float64 {
	return float64(SampleRate) / float64(nsps)
}

// BinForFrequency converts an audio frequency to a spectrogram bin index for
// an N-point FFT at SampleRate.
func BinForFrequency(freqHz float64, n int) int {
	return int(math.Round(freqHz * float64(n) / float64(SampleRate)))
}
