// Package basetext implements the base-43 free-text packing shared by FT8
// type-0 free text and the JS8 payload (spec §4.6/§4.7): a fixed 43-symbol
// alphabet, a 13-character fixed-width field, and a Horner-scheme big
// integer built and unwound via internal/bitpack's fixed-limb type.
//
// Both spec sections name this "base-43"; spec §4.7 spells the alphabet out
// with 43 symbols (it includes '@'), while §4.6 quotes the same alphabet
// without '@' — 42 characters, contradicting its own "base-43" label. This
// package resolves the discrepancy in favor of the explicitly-counted
// 43-symbol alphabet for both callers (see DESIGN.md Open Question log).
package basetext

import (
	"fmt"
	"strings"

	"github.com/cwsl/ftcore/internal/bitpack"
)

// Alphabet is the 43-symbol base-text character set.
const Alphabet = " 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ+-./?@"

const Base = 43

// NumChars is the fixed field width (13 characters) packed by both callers.
const NumChars = 13

// Pack encodes up to NumChars characters of text (right-padded with spaces,
// truncated if longer) into a big integer via Horner's method: big = big*43
// + charIndex, processed left to right so the first character is most
// significant (spec §4.7 "packed big-endian").
func Pack(text string) (bitpack.Big128, error) {
	text = strings.ToUpper(text)
	if len(text) > NumChars {
		text = text[:NumChars]
	}
	for len(text) < NumChars {
		text += " "
	}

	big := bitpack.NewBig128(0)
	for i := 0; i < NumChars; i++ {
		idx := strings.IndexByte(Alphabet, text[i])
		if idx < 0 {
			return big, fmt.Errorf("basetext: character %q not in alphabet", text[i])
		}
		big.MulAdd(Base, uint16(idx))
	}
	return big, nil
}

// Unpack is the inverse of Pack: repeated division by 43 peels off
// characters least-significant first, which are then reversed.
func Unpack(big bitpack.Big128) string {
	chars := make([]byte, NumChars)
	for i := NumChars - 1; i >= 0; i-- {
		idx := big.DivMod(Base)
		chars[i] = Alphabet[idx]
	}
	return strings.TrimSpace(string(chars))
}
