package js8

import "testing"

func TestEncodeDecodeRoundTripCleanChannel(t *testing.T) {
	msg := Message{Text: "CQ CQ CQ"}
	samples, err := Encode(msg, Normal, 1500)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	profile := Normal.Profile()
	if len(samples) != NumSymbols*profile.NSPS {
		t.Fatalf("Encode produced %d samples, want %d", len(samples), NumSymbols*profile.NSPS)
	}

	decoded := Decode(samples, Normal, 200, 3000, 1.0, 50, ldpcTestIterations)
	if len(decoded) == 0 {
		t.Fatalf("Decode found no candidates on a clean synthetic signal")
	}

	found := false
	for _, d := range decoded {
		if d.Message.Text == "CQ CQ CQ" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("did not find the expected free-text decode among %d candidates: %+v", len(decoded), decoded)
	}
}

const ldpcTestIterations = 50
