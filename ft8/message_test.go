package ft8

import "testing"

func TestCQRoundTrip(t *testing.T) {
	msg := Message{Variant: VariantCQ, From: "DL1ABC", Grid: "JO31"}
	bits, err := Pack(msg)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(bits) != 77 {
		t.Fatalf("Pack returned %d bits, want 77", len(bits))
	}

	got, err := Unpack(bits)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Variant != VariantCQ {
		t.Fatalf("Variant = %v, want CQ", got.Variant)
	}
	if got.From != "DL1ABC" {
		t.Fatalf("From = %q, want DL1ABC", got.From)
	}
	if got.Grid != "JO31" {
		t.Fatalf("Grid = %q, want JO31", got.Grid)
	}
	if want := "CQ DL1ABC JO31"; got.Text() != want {
		t.Fatalf("Text() = %q, want %q", got.Text(), want)
	}
}

func TestStandardResponseRoundTrip(t *testing.T) {
	msg := Message{Variant: VariantResponse, To: "DL1ABC", From: "W9XYZ", Report: "-05"}
	bits, err := Pack(msg)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := Unpack(bits)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Variant != VariantResponse {
		t.Fatalf("Variant = %v, want Response", got.Variant)
	}
	if got.To != "DL1ABC" || got.From != "W9XYZ" {
		t.Fatalf("To/From = %q/%q, want DL1ABC/W9XYZ", got.To, got.From)
	}
	if got.Report != "-05" {
		t.Fatalf("Report = %q, want -05", got.Report)
	}
}

func TestConfirmRR73RoundTrip(t *testing.T) {
	msg := Message{Variant: VariantConfirm, To: "W9XYZ", From: "DL1ABC", Report: "RR73"}
	bits, err := Pack(msg)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := Unpack(bits)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Variant != VariantConfirm || got.Report != "RR73" {
		t.Fatalf("got %+v, want Confirm/RR73", got)
	}
}

func TestFreeTextRoundTrip(t *testing.T) {
	msg := Message{Variant: VariantFreeText, FreeText: "HELLO WORLD"}
	bits, err := Pack(msg)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got, err := Unpack(bits)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Variant != VariantFreeText {
		t.Fatalf("Variant = %v, want FreeText", got.Variant)
	}
	if got.FreeText != "HELLO WORLD" {
		t.Fatalf("FreeText = %q, want HELLO WORLD", got.FreeText)
	}
}

func TestShortCallsignAlignment(t *testing.T) {
	for _, call := range []string{"W1AW", "K1ABC", "DL1ABC", "VK2XYZ"} {
		v, ok := encodeCallsign28(call)
		if !ok {
			t.Fatalf("encodeCallsign28(%q) failed", call)
		}
		if got := decodeCallsign28(v); got != call {
			t.Fatalf("decodeCallsign28(encodeCallsign28(%q)) = %q", call, got)
		}
	}
}
