package crc14

import "testing"

func TestAllZeroVector(t *testing.T) {
	payload := make([]uint8, 77)
	crc := ComputePayload77(payload)
	packed := Append(payload)
	if !Validate(packed) {
		t.Fatalf("Validate(Append(zeros)) = false, want true")
	}
	recomputed := ComputePayload77(packed[:77])
	if recomputed != crc {
		t.Fatalf("recomputed CRC %d != original %d", recomputed, crc)
	}
}

func TestSingleBitFlipBreaksValidation(t *testing.T) {
	payload := make([]uint8, 77)
	for i := range payload {
		payload[i] = uint8((i * 7) % 2)
	}
	packed := Append(payload)
	if !Validate(packed) {
		t.Fatalf("expected valid CRC before flip")
	}
	flips := 0
	for i := range packed {
		flipped := make([]uint8, len(packed))
		copy(flipped, packed)
		flipped[i] ^= 1
		if !Validate(flipped) {
			flips++
		}
	}
	if flips != len(packed) {
		t.Fatalf("expected every single-bit flip to break validation, %d/%d did", flips, len(packed))
	}
}
