package ft8

import "strings"

// Position-specific alphabets for the 6-character aligned callsign encoding
// (spec §4.6): position 0 is space+A-Z+0-9 (37), position 1 is 0-9+A-Z (36),
// position 2 is digits only (10), positions 3-5 are space+A-Z (27).
const (
	alphaPos0 = " ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	alphaPos1 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphaPos2 = "0123456789"
	alphaPos3 = " ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

func alphabetFor(pos int) string {
	switch pos {
	case 0:
		return alphaPos0
	case 1:
		return alphaPos1
	case 2:
		return alphaPos2
	default:
		return alphaPos3
	}
}

// alignCallsign pads a callsign to 6 characters so its first digit lands at
// index 2, per spec §4.6 ("align so the first digit sits at position 2").
func alignCallsign(call string) string {
	call = strings.ToUpper(strings.TrimSpace(call))
	digitIdx := -1
	for i := 0; i < len(call); i++ {
		if call[i] >= '0' && call[i] <= '9' {
			digitIdx = i
			break
		}
	}
	if digitIdx < 0 {
		digitIdx = 2
	}
	shift := 2 - digitIdx
	if shift < 0 {
		shift = 0
	}
	padded := strings.Repeat(" ", shift) + call
	for len(padded) < 6 {
		padded += " "
	}
	if len(padded) > 6 {
		padded = padded[:6]
	}
	return padded
}

// encodeCallsign28 packs a 6-character aligned callsign into a 28-bit
// mixed-radix integer via the formula spec §4.6 gives:
// ((((c0*36+c1)*10+c2)*27+c3)*27+c4)*27+c5
func encodeCallsign28(call string) (uint32, bool) {
	aligned := alignCallsign(call)
	var digits [6]int
	for i := 0; i < 6; i++ {
		alphabet := alphabetFor(i)
		idx := strings.IndexByte(alphabet, aligned[i])
		if idx < 0 {
			return 0, false
		}
		digits[i] = idx
	}
	v := uint32(digits[0])
	v = v*36 + uint32(digits[1])
	v = v*10 + uint32(digits[2])
	v = v*27 + uint32(digits[3])
	v = v*27 + uint32(digits[4])
	v = v*27 + uint32(digits[5])
	return v, true
}

// decodeCallsign28 is the inverse of encodeCallsign28.
func decodeCallsign28(v uint32) string {
	c5 := v % 27
	v /= 27
	c4 := v % 27
	v /= 27
	c3 := v % 27
	v /= 27
	c2 := v % 10
	v /= 10
	c1 := v % 36
	v /= 36
	c0 := v

	b := []byte{
		alphaPos0[c0],
		alphaPos1[c1],
		alphaPos2[c2],
		alphaPos3[c3],
		alphaPos3[c4],
		alphaPos3[c5],
	}
	return strings.TrimSpace(string(b))
}
