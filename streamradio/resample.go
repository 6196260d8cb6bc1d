package streamradio

// Named sample rates for the codec path and the two transceiver directions
// (spec §4.9/§9); the transceiver rates vary slightly with crystal tolerance,
// so these are nominal centers used as defaults.
const (
	CodecSampleRate     = 12000
	NominalRXSampleRate = 7812.5
	NominalTXSampleRate = 11520
)

// Resample converts samples from one sample rate to another by linear
// interpolation (spec §4.9). from and to are in Hz; a from or to of zero
// returns the input unchanged.
func Resample(in []float32, from, to float64) []float32 {
	if from <= 0 || to <= 0 || from == to || len(in) == 0 {
		out := make([]float32, len(in))
		copy(out, in)
		return out
	}

	ratio := from / to
	outLen := int(float64(len(in)) / ratio)
	if outLen < 1 {
		outLen = 1
	}
	out := make([]float32, outLen)
	for i := range out {
		srcPos := float64(i) * ratio
		idx := int(srcPos)
		frac := srcPos - float64(idx)
		if idx >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		out[i] = in[idx]*float32(1-frac) + in[idx+1]*float32(frac)
	}
	return out
}
