package ft8

import "testing"

func TestEncodeDecodeRoundTripCleanChannel(t *testing.T) {
	msg := Message{Variant: VariantCQ, From: "DL1ABC", Grid: "JO31"}
	samples, err := Encode(msg, 1500)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(samples) != NumSymbols*NSPS {
		t.Fatalf("Encode produced %d samples, want %d", len(samples), NumSymbols*NSPS)
	}

	decoded := Decode(samples, 200, 3000, 1.0, 50, ldpcTestIterations)
	if len(decoded) == 0 {
		t.Fatalf("Decode found no candidates on a clean synthetic signal")
	}

	found := false
	for _, d := range decoded {
		if d.Message.Variant == VariantCQ && d.Message.From == "DL1ABC" && d.Message.Grid == "JO31" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("did not find the expected CQ decode among %d candidates: %+v", len(decoded), decoded)
	}
}

const ldpcTestIterations = 50
