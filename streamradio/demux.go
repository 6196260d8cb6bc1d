// Package streamradio implements the byte-level demultiplexer that shares a
// single duplex serial link between ASCII CAT control responses and 8-bit
// PCM audio (spec §4.9), the paired outbound-audio encoder, sample-rate
// resampling, and the serial port / transceiver plumbing around them.
package streamradio

// state is StreamDemux's internal position in the 4-state machine (spec §4.9).
type state int

const (
	stateCat state = iota
	stateAfterSemi
	stateAfterSemiU
	stateAudio
)

// StreamDemux separates CAT responses from inbound PCM audio on one duplex
// byte stream. It never loses a byte and never aborts on malformed input;
// splitting a sequence across arbitrary chunk boundaries yields the same
// emissions as feeding it in one call (spec §8 chunking invariance).
type StreamDemux struct {
	st     state
	catBuf []byte
	CAT    []string
	Audio  []float32
}

// NewStreamDemux returns a demultiplexer in its initial Cat state.
func NewStreamDemux() *StreamDemux {
	return &StreamDemux{st: stateCat}
}

// Reset clears state and accumulators.
func (d *StreamDemux) Reset() {
	d.st = stateCat
	d.catBuf = d.catBuf[:0]
	d.CAT = nil
	d.Audio = nil
}

// Feed processes one chunk of bytes, appending any newly completed CAT
// responses to d.CAT and any newly decoded samples to d.Audio.
func (d *StreamDemux) Feed(data []byte) {
	for _, b := range data {
		d.step(b)
	}
}

func (d *StreamDemux) step(b byte) {
	switch d.st {
	case stateCat:
		if b == ';' {
			if len(d.catBuf) > 0 {
				d.CAT = append(d.CAT, string(d.catBuf)+";")
				d.catBuf = d.catBuf[:0]
			}
			d.st = stateAfterSemi
			return
		}
		d.catBuf = append(d.catBuf, b)

	case stateAfterSemi:
		if b == 'U' {
			d.st = stateAfterSemiU
			return
		}
		d.catBuf = append(d.catBuf, b)
		d.st = stateCat

	case stateAfterSemiU:
		if b == 'S' {
			d.st = stateAudio
			return
		}
		d.catBuf = append(d.catBuf, 'U', b)
		d.st = stateCat

	case stateAudio:
		if b == ';' {
			d.st = stateAfterSemi
			return
		}
		d.Audio = append(d.Audio, byteToSample(b))
	}
}

// byteToSample decodes an unsigned 8-bit PCM sample to [-1,1) (spec §4.9).
func byteToSample(b byte) float32 {
	return (float32(b) - 128) / 128
}
