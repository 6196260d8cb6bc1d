// Package fsksynth generates continuous-phase 8-FSK waveforms for the FT8
// and JS8 transmit paths (spec §4.8).
package fsksynth

import "math"

// RampSamples returns the number of samples in a ~5ms raised-cosine ramp at
// the given sample rate.
func RampSamples(sampleRate int) int {
	n := int(float64(sampleRate) * 0.005)
	if n < 1 {
		n = 1
	}
	return n
}

// Synthesize generates len(symbols)*nsps samples of continuous-phase FSK:
// base frequency f0, tone spacing toneSpacing, symbol rate such that each
// symbol occupies nsps samples at sampleRate, amplitude amplitude, with a
// raised-cosine ramp of rampSamples at the start and end (spec §4.8).
func Synthesize(symbols []uint8, f0, toneSpacing float64, nsps, sampleRate int, amplitude float64, rampSamples int) []float32 {
	total := len(symbols) * nsps
	out := make([]float32, total)

	phase := 0.0
	twoPi := 2 * math.Pi
	for k, sym := range symbols {
		freq := f0 + float64(sym)*toneSpacing
		step := twoPi * freq / float64(sampleRate)
		base := k * nsps
		for i := 0; i < nsps; i++ {
			out[base+i] = float32(amplitude * math.Sin(phase))
			phase += step
			if phase > twoPi {
				phase -= twoPi
			}
		}
	}

	applyRamp(out, rampSamples)
	return out
}

// applyRamp scales the first and last rampSamples samples with a raised
// cosine window: w(i) = 0.5*(1-cos(pi*i/R)).
func applyRamp(samples []float32, rampSamples int) {
	if rampSamples <= 0 || rampSamples > len(samples)/2 {
		return
	}
	for i := 0; i < rampSamples; i++ {
		w := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(rampSamples)))
		samples[i] *= float32(w)
		samples[len(samples)-1-i] *= float32(w)
	}
}
