package js8

import (
	"strings"

	"github.com/cwsl/ftcore/internal/basetext"
	"github.com/cwsl/ftcore/internal/bitpack"
)

// Message is a decoded or to-be-encoded JS8 payload (spec §4.7). Text holds
// the raw payload body of up to 13 characters. Directed parses a
// "FROM TO: BODY" surface form out of Text for routing; ':' is not in the
// base-43 alphabet, so Pack rejects text in that form and Unpack never
// produces it.
type Message struct {
	Text string
}

// Directed splits a "FROM TO: BODY" surface form out of Text, returning
// ok=false if Text doesn't match that shape.
func (m Message) Directed() (from, to, body string, ok bool) {
	parts := strings.SplitN(m.Text, ": ", 2)
	if len(parts) != 2 {
		return "", "", "", false
	}
	fromTo := strings.Fields(parts[0])
	if len(fromTo) != 2 {
		return "", "", "", false
	}
	return fromTo[0], fromTo[1], parts[1], true
}

// Pack encodes up to 13 characters of text into 77 payload bits (spec §4.7):
// Horner over a 5x16-bit big integer multiplying by 43 and adding each
// character's index, then extracting 77 bits MSB-first.
func Pack(m Message) ([]uint8, error) {
	big, err := basetext.Pack(m.Text)
	if err != nil {
		return nil, err
	}
	bits := make([]uint8, 77)
	for i := 0; i < 77; i++ {
		bits[i] = uint8(big.ExtractMSB(77, i, 1))
	}
	return bits, nil
}

// Unpack is the inverse of Pack, repeated division by 43.
func Unpack(bits77 []uint8) (Message, error) {
	// Front-pad to a byte-aligned 80-bit width so the packed bytes represent
	// the same right-aligned 77-bit value ExtractMSB produced in Pack.
	padded := make([]uint8, 80)
	copy(padded[3:], bits77)
	packedBytes := make([]uint8, 10)
	for i, b := range padded {
		if b != 0 {
			packedBytes[i/8] |= 1 << uint(7-(i%8))
		}
	}
	big := bitpack.FromBytesMSB(packedBytes)
	return Message{Text: basetext.Unpack(big)}, nil
}
