package ldpc

import (
	"math/rand"
	"testing"
)

func TestEncodeCheckSatisfied(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		payload := make([]uint8, K)
		for i := range payload {
			payload[i] = uint8(r.Intn(2))
		}
		codeword := Encode(payload)
		if errs := Check(codeword); errs != 0 {
			t.Fatalf("trial %d: Check(Encode(payload)) = %d errors, want 0", trial, errs)
		}
	}
}

func TestDecodeNoiseFreeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		payload := make([]uint8, K)
		for i := range payload {
			payload[i] = uint8(r.Intn(2))
		}
		codeword := Encode(payload)

		llr := make([]float64, N)
		for i, b := range codeword {
			if b == 0 {
				llr[i] = 10
			} else {
				llr[i] = -10
			}
		}

		decoded, ok := Decode(llr, MaxIterations)
		if !ok {
			t.Fatalf("trial %d: Decode failed on noise-free codeword", trial)
		}
		for i := range payload {
			if decoded[i] != payload[i] {
				t.Fatalf("trial %d: decoded[%d]=%d want %d", trial, i, decoded[i], payload[i])
			}
		}
	}
}

func TestDecodeAllZeroLLRFails(t *testing.T) {
	llr := make([]float64, N)
	if _, ok := Decode(llr, MaxIterations); ok {
		t.Fatalf("Decode with all-zero LLRs should fail")
	}
}
