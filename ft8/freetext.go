package ft8

import (
	"github.com/cwsl/ftcore/internal/basetext"
	"github.com/cwsl/ftcore/internal/bitpack"
)

// packFreeText71 packs up to 13 characters of free text into a 71-bit-wide
// big integer (spec §4.6).
func packFreeText71(text string) (bitpack.Big128, error) {
	return basetext.Pack(text)
}

// unpackFreeText71 reconstructs free text from 71 bits (MSB-first 0/1
// array).
func unpackFreeText71(bits71 []uint8) (string, error) {
	padded := make([]uint8, 72)
	copy(padded[1:], bits71)
	packedBytes := make([]uint8, 9)
	for i, b := range padded {
		if b != 0 {
			packedBytes[i/8] |= 1 << uint(7-(i%8))
		}
	}
	big := bitpack.FromBytesMSB(packedBytes)
	return basetext.Unpack(big), nil
}
