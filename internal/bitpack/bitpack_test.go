package bitpack

import "testing"

func TestAppendExtractRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Append(0b101, 3)
	w.Append(0b1100110, 7)
	w.Append(0, 4)
	if w.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", w.Len())
	}
	if got := Extract(w.Bytes(), 0, 3); got != 0b101 {
		t.Fatalf("Extract(0,3) = %b, want 101", got)
	}
	if got := Extract(w.Bytes(), 3, 7); got != 0b1100110 {
		t.Fatalf("Extract(3,7) = %b, want 1100110", got)
	}
}

func TestBig128MulAddDivModInverse(t *testing.T) {
	b := NewBig128(0)
	digits := []uint16{1, 7, 22, 0, 35, 9}
	for _, d := range digits {
		b.MulAdd(43, d)
	}
	var out []uint16
	for i := 0; i < len(digits); i++ {
		out = append([]uint16{b.DivMod(43)}, out...)
	}
	for i, d := range digits {
		if out[i] != d {
			t.Fatalf("digit %d: got %d want %d", i, out[i], d)
		}
	}
	if !b.IsZero() {
		t.Fatalf("expected zero after fully dividing out all digits")
	}
}
