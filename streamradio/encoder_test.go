package streamradio

import (
	"bytes"
	"testing"
)

func TestOutboundAudioBlockScenario(t *testing.T) {
	got := EncodeAudioBlock([]float32{0.0, 1.0, -1.0})
	want := []byte{0x3B, 0x55, 0x53, 0x80, 0xFF, 0x01, 0x3B}
	if !bytes.Equal(got, want) {
		t.Fatalf("EncodeAudioBlock = % X, want % X", got, want)
	}
}

func TestOutboundAudioNeverEmits3B(t *testing.T) {
	// x = (0x3B-128)/128 would naturally encode to the delimiter byte; the
	// encoder must promote it to 0x3C instead.
	x := (float32(0x3B) - 128) / 128
	got := EncodeAudioBlock([]float32{x})
	payload := got[3 : len(got)-1]
	for _, b := range payload {
		if b == 0x3B {
			t.Fatalf("payload contains undelimited 0x3B: % X", got)
		}
	}
	if payload[0] != 0x3C {
		t.Fatalf("expected promotion to 0x3C, got %X", payload[0])
	}
}

func TestRoundTripThroughDemux(t *testing.T) {
	samples := []float32{0.0, 0.5, -0.5, 1.0, -1.0}
	block := EncodeAudioBlock(samples)

	d := NewStreamDemux()
	d.Feed(block)
	if len(d.Audio) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(d.Audio), len(samples))
	}
	for i, want := range samples {
		if !approxEqual(d.Audio[i], want) {
			t.Fatalf("audio[%d] = %v, want ~%v", i, d.Audio[i], want)
		}
	}
}
