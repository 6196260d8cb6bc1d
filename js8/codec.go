package js8

import (
	"math"

	"github.com/cwsl/ftcore/internal/costas"
	"github.com/cwsl/ftcore/internal/crc14"
	"github.com/cwsl/ftcore/internal/fsksynth"
	"github.com/cwsl/ftcore/internal/ldpc"
	"github.com/cwsl/ftcore/internal/metrics"
	"github.com/cwsl/ftcore/internal/spectral"
)

var costasArray = costas.Array{
	Pattern:   CostasPattern[:],
	Positions: SyncPositions[:],
}

// Encode runs the TX path at the given speed and base frequency (spec §4.7).
func Encode(m Message, speed Speed, f0 float64) ([]float32, error) {
	payload77, err := Pack(m)
	if err != nil {
		return nil, err
	}
	payload91 := crc14.Append(payload77)
	codeword := ldpc.Encode(payload91)

	profile := speed.Profile()
	symbols := make([]uint8, NumSymbols)
	dataIdx := 0
	groupIdx := 0
	for pos := 0; pos < NumSymbols; pos++ {
		if groupIdx < NumSyncGroup && pos == SyncPositions[groupIdx] {
			copy(symbols[pos:pos+SyncLen], CostasPattern[:])
			pos += SyncLen - 1
			groupIdx++
			continue
		}
		three := uint8(codeword[dataIdx])<<2 | uint8(codeword[dataIdx+1])<<1 | uint8(codeword[dataIdx+2])
		symbols[pos] = GrayMap[three]
		dataIdx += 3
	}

	ramp := fsksynth.RampSamples(spectral.SampleRate)
	return fsksynth.Synthesize(symbols, f0, profile.ToneSpacing, profile.NSPS, spectral.SampleRate, 1.0, ramp), nil
}

// Decoded is one successfully decoded JS8 frame.
type Decoded struct {
	Message       Message
	FrequencyHz   float64
	TimeOffsetSec float64
	SNRdB         float64
	Score         float64
}

// Decode runs the RX path at the given speed over a TX-window's worth of
// audio (spec §4.7): spectrogram -> Costas -> LLR -> LDPC -> CRC -> unpack.
func Decode(samples []float32, speed Speed, minFreqHz, maxFreqHz, threshold float64, maxCandidates, ldpcIters int) []Decoded {
	profile := speed.Profile()
	spec := spectral.Build(samples, profile.NSPS)
	wrapped := &costas.Spectrogram{Spectrogram: spec, FFTSize: profile.NSPS}

	candidates := costas.Search(wrapped, costasArray, 8, minFreqHz, maxFreqHz, threshold, maxCandidates)
	metrics.CandidatesFound.WithLabelValues("JS8").Add(float64(len(candidates)))

	var out []Decoded
	for _, cand := range candidates {
		baseRow := cand.TimeOffsetSamples / spec.HopSize
		llr := extractLLR(spec, cand.FreqBin, baseRow)
		decodedBits, ok := ldpc.Decode(llr, ldpcIters)
		if !ok {
			metrics.LDPCResult.WithLabelValues("JS8", "failed").Inc()
			continue
		}
		metrics.LDPCResult.WithLabelValues("JS8", "converged").Inc()

		if !crc14.Validate(decodedBits) {
			metrics.CRCResult.WithLabelValues("JS8", "invalid").Inc()
			continue
		}
		metrics.CRCResult.WithLabelValues("JS8", "valid").Inc()

		msg, err := Unpack(decodedBits[:77])
		if err != nil {
			continue
		}
		metrics.MessagesDecoded.WithLabelValues("JS8").Inc()

		out = append(out, Decoded{
			Message:       msg,
			FrequencyHz:   cand.RefinedFreqHz,
			TimeOffsetSec: float64(cand.TimeOffsetSamples) / float64(spectral.SampleRate),
			SNRdB:         estimateSNR(spec, cand.FreqBin, baseRow, profile.ToneSpacing),
			Score:         cand.Score,
		})
	}
	return out
}

func extractLLR(spec *spectral.Spectrogram, freqBin, baseRow int) []float64 {
	llr := make([]float64, 174)
	bitOut := 0
	groupIdx := 0
	for pos := 0; pos < NumSymbols; pos++ {
		if groupIdx < NumSyncGroup && pos == SyncPositions[groupIdx] {
			pos += SyncLen - 1
			groupIdx++
			continue
		}
		var tonePower [8]float64
		for tone := 0; tone < 8; tone++ {
			tonePower[tone] = spec.Power(baseRow+pos, freqBin+tone)
		}
		for bitPos := 0; bitPos < 3; bitPos++ {
			var sum0, sum1 float64
			for tone := 0; tone < 8; tone++ {
				bitValue := (grayDecode[tone] >> uint(2-bitPos)) & 1
				if bitValue == 0 {
					sum0 += tonePower[tone]
				} else {
					sum1 += tonePower[tone]
				}
			}
			llr[bitOut] = math.Log(sum0+1e-12) - math.Log(sum1+1e-12)
			bitOut++
		}
	}
	return llr
}

func estimateSNR(spec *spectral.Spectrogram, freqBin, baseRow int, toneSpacing float64) float64 {
	var signal float64
	var count int
	for _, groupStart := range SyncPositions {
		for k, tone := range CostasPattern {
			signal += spec.Power(baseRow+groupStart+k, freqBin+int(tone))
			count++
		}
	}
	if count > 0 {
		signal /= float64(count)
	}
	var noiseSum float64
	var noiseCount int
	for row := baseRow; row < baseRow+NumSymbols && row < len(spec.Rows); row++ {
		for offset := -10; offset <= 18; offset++ {
			if offset >= 0 && offset < 8 {
				continue
			}
			noiseSum += spec.Power(row, freqBin+offset)
			noiseCount++
		}
	}
	noise := 1e-12
	if noiseCount > 0 {
		noise = noiseSum / float64(noiseCount)
	}
	return 10*math.Log10(signal/noise+1e-12) - 10*math.Log10(2500.0/toneSpacing)
}
