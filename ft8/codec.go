package ft8

import (
	"errors"
	"math"

	"github.com/cwsl/ftcore/internal/costas"
	"github.com/cwsl/ftcore/internal/crc14"
	"github.com/cwsl/ftcore/internal/fsksynth"
	"github.com/cwsl/ftcore/internal/ldpc"
	"github.com/cwsl/ftcore/internal/metrics"
	"github.com/cwsl/ftcore/internal/spectral"
)

// Errors naming the RX path's failure stages (spec §7, "Decode" category).
// Decode does not return them: it drops a failing candidate and counts the
// failure in internal/metrics.
var (
	ErrSyncBelowThreshold = errors.New("ft8: no sync candidate above threshold")
	ErrLDPCNotConverged   = errors.New("ft8: ldpc did not converge")
	ErrCRCMismatch        = errors.New("ft8: crc mismatch")
)

// costasArray adapts the package-level Costas geometry to internal/costas's
// generic Array type.
var costasArray = costas.Array{
	Pattern:   CostasPattern[:],
	Positions: SyncPositions[:],
}

// Encode runs the full TX path (spec §4.6): pack -> CRC -> LDPC -> Gray map
// -> sync insert -> synthesize, returning 79*NSPS audio samples at the given
// base frequency f0 (Hz).
func Encode(m Message, f0 float64) ([]float32, error) {
	payload77, err := Pack(m)
	if err != nil {
		return nil, err
	}
	payload91 := crc14.Append(payload77)
	codeword := ldpc.Encode(payload91)

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
	return fsksynth.Synthesize(symbols, f0, ToneSpacing, NSPS, spectral.SampleRate, 1.0, ramp), nil
}

// Decoded is one successfully decoded FT8 frame (spec §3 / §4.6 RX path).
type Decoded struct {
	Message       Message
	FrequencyHz   float64
	TimeOffsetSec float64
	SNRdB         float64
	Score         float64
}

// Decode runs the full RX path over a slot's worth of audio (spec §4.6):
// spectrogram -> Costas search -> LLR extraction -> LDPC -> CRC -> unpack.
// Decode failures at any stage are non-fatal per-candidate (spec §7); the
// returned slice contains only fully validated messages.
func Decode(samples []float32, minFreqHz, maxFreqHz, threshold float64, maxCandidates, ldpcIters int) []Decoded {
	spec := spectral.Build(samples, NSPS)
	wrapped := &costas.Spectrogram{Spectrogram: spec, FFTSize: NSPS}

	candidates := costas.Search(wrapped, costasArray, 8, minFreqHz, maxFreqHz, threshold, maxCandidates)
	metrics.CandidatesFound.WithLabelValues("FT8").Add(float64(len(candidates)))

	var out []Decoded
	for _, cand := range candidates {
		baseRow := cand.TimeOffsetSamples / spec.HopSize
		llr := extractLLR(spec, cand.FreqBin, baseRow)
		decodedBits, ok := ldpc.Decode(llr, ldpcIters)
		if !ok {
			metrics.LDPCResult.WithLabelValues("FT8", "failed").Inc()
			continue
		}
		metrics.LDPCResult.WithLabelValues("FT8", "converged").Inc()

		payload91 := decodedBits
		if !crc14.Validate(payload91) {
			metrics.CRCResult.WithLabelValues("FT8", "invalid").Inc()
			continue
		}
		metrics.CRCResult.WithLabelValues("FT8", "valid").Inc()

		msg, err := Unpack(payload91[:77])
		if err != nil {
			continue
		}
		metrics.MessagesDecoded.WithLabelValues("FT8").Inc()

		timeSec := float64(cand.TimeOffsetSamples) / float64(spectral.SampleRate)
		out = append(out, Decoded{
			Message:       msg,
			FrequencyHz:   cand.RefinedFreqHz,
			TimeOffsetSec: timeSec,
			SNRdB:         estimateSNR(spec, cand.FreqBin, baseRow),
			Score:         cand.Score,
		})
	}
	return out
}

// extractLLR reads the 58 data-symbol tone powers and produces 174 LLRs
// (spec §4.6): for each of the three Gray-coded bit positions, LLR =
// log(sum powers where bit=0) - log(sum powers where bit=1).
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

// estimateSNR computes spec §4.6's SNR estimate: 10*log10(signal/noise) -
// 10*log10(2500/6.25), using the Costas sync tone power as the signal
// estimate and the mean background bin power as the noise floor.
func estimateSNR(spec *spectral.Spectrogram, freqBin, baseRow int) float64 {
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

	return 10*math.Log10(signal/noise+1e-12) - 10*math.Log10(2500.0/ToneSpacing)
}
