// Package frame79 holds the 79-symbol frame geometry shared by FT8 and JS8
// (spec §4.7 "Same 79-symbol layout and Costas array"): the Costas sync
// array, its three fixed positions, and the Gray code mapping 3 data bits to
// one of the 8 tones.
package frame79

const (
	NumSymbols   = 79
	NumDataSyms  = 58
	SyncLen      = 7
	NumSyncGroup = 3
	SyncOffset   = 36
)

// CostasPattern is the canonical Costas sync array (spec §4.5).
var CostasPattern = [SyncLen]uint8{3, 1, 4, 0, 6, 5, 2}

// SyncPositions are the symbol indices where each Costas group starts.
var SyncPositions = [NumSyncGroup]int{0, 36, 72}

// GrayMap encodes a 3-bit value to a Gray-coded tone index (spec §4.6).
var GrayMap = [8]uint8{0, 1, 3, 2, 6, 7, 5, 4}

// GrayDecode is the inverse of GrayMap: tone index -> 3-bit value.
var GrayDecode = buildGrayDecode()

func buildGrayDecode() [8]uint8 {
	var d [8]uint8
	for v, tone := range GrayMap {
		d[tone] = uint8(v)
	}
	return d
}
