// Package js8 implements the JS8 codec: the same 79-symbol 8-FSK/Costas/LDPC
// pipeline as FT8 at one of five speed-dependent symbol rates, with a
// base-43 free-text payload in place of FT8's structured message types
// (spec §4.7).
package js8

import "github.com/cwsl/ftcore/internal/frame79"

// Speed selects one of JS8's five symbol-rate profiles (spec §4.7).
type Speed int

const (
	Ultra Speed = iota
	Slow
	Normal
	Fast
	Turbo
)

// Profile describes one speed's timing parameters.
type Profile struct {
	Name        string
	NSPS        int
	ToneSpacing float64 // Hz
	TXWindowSec float64
}

var profiles = map[Speed]Profile{
	Ultra:  {Name: "Ultra", NSPS: 7680, ToneSpacing: 1.5625, TXWindowSec: 120},
	Slow:   {Name: "Slow", NSPS: 3840, ToneSpacing: 3.125, TXWindowSec: 30},
	Normal: {Name: "Normal", NSPS: 1920, ToneSpacing: 6.25, TXWindowSec: 15},
	Fast:   {Name: "Fast", NSPS: 1280, ToneSpacing: 9.375, TXWindowSec: 10},
	Turbo:  {Name: "Turbo", NSPS: 640, ToneSpacing: 18.75, TXWindowSec: 6},
}

// Profile returns the timing profile for a speed.
func (s Speed) Profile() Profile {
	return profiles[s]
}

func (s Speed) String() string {
	return profiles[s].Name
}

const (
	NumSymbols   = frame79.NumSymbols
	NumDataSyms  = frame79.NumDataSyms
	SyncLen      = frame79.SyncLen
	NumSyncGroup = frame79.NumSyncGroup
)

var (
	CostasPattern = frame79.CostasPattern
	SyncPositions = frame79.SyncPositions
	GrayMap       = frame79.GrayMap
	grayDecode    = frame79.GrayDecode
)
