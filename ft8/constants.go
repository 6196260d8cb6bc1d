// Package ft8 implements the FT8 codec: message packing, CRC-14, systematic
// LDPC(174,91) decode, Costas sync search, and continuous-phase 8-FSK
// synthesis (spec §4.6), grounded on the teacher's audio_extensions/ft8
// package and generalized to the exact bit layouts spec.md §4.6 specifies.
package ft8

import "github.com/cwsl/ftcore/internal/frame79"

const (
	NumSymbols   = frame79.NumSymbols
	NumDataSyms  = frame79.NumDataSyms
	NSPS         = 1920 // samples per symbol at 12 kHz
	ToneSpacing  = 6.25 // Hz
	SlotSeconds  = 15.0
	SyncLen      = frame79.SyncLen
	NumSyncGroup = frame79.NumSyncGroup
	SyncOffset   = frame79.SyncOffset
)

// CostasPattern is the canonical FT8 sync array (spec §4.5).
var CostasPattern = frame79.CostasPattern

// SyncPositions are the symbol indices where each Costas group starts.
var SyncPositions = frame79.SyncPositions

// GrayMap encodes 3 bits to a Gray-coded tone index (spec §4.6).
var GrayMap = frame79.GrayMap

// grayDecode is the inverse of GrayMap, tone -> 3-bit value.
var grayDecode = frame79.GrayDecode

// cqToken is the 28-bit value spec §4.6 reserves for an unadorned "CQ".
const cqToken = 1<<28 - 2
