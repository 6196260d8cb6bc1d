package js8

import "testing"

func TestFreeTextRoundTrip(t *testing.T) {
	msg := Message{Text: "HELLO WORLD"}
	packed, err := Pack(msg)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(packed) != 77 {
		t.Fatalf("Pack produced %d bits, want 77", len(packed))
	}

	got, err := Unpack(packed)
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if got.Text != "HELLO WORLD" {
		t.Fatalf("round trip = %q, want %q", got.Text, "HELLO WORLD")
	}
}

func TestDirectedMessageParsing(t *testing.T) {
	msg := Message{Text: "K1ABC W1AW: FB 73"}
	from, to, body, ok := msg.Directed()
	if !ok {
		t.Fatalf("Directed() failed to parse %q", msg.Text)
	}
	if from != "K1ABC" || to != "W1AW" || body != "FB 73" {
		t.Fatalf("Directed() = (%q, %q, %q), want (K1ABC, W1AW, FB 73)", from, to, body)
	}
}

func TestDirectedMessageNotDirected(t *testing.T) {
	msg := Message{Text: "JUST SOME TEXT"}
	if _, _, _, ok := msg.Directed(); ok {
		t.Fatalf("Directed() should fail on undirected text %q", msg.Text)
	}
}
