package schedule

import (
	"context"
	"time"
)

// RXFunc runs demodulation over one cycle's captured audio.
type RXFunc func(ctx context.Context, cycleStart time.Time)

// TXFunc keys and sends one cycle's transmission.
type TXFunc func(ctx context.Context, cycleStart time.Time)

// CycleScheduler is a cooperative loop aligned to the wall clock (spec
// §4.10): it sleeps until 0.5s past each period boundary, runs RX over the
// cycle just completed, and — if TX is armed and the slot parity matches —
// runs TX. Every suspension point is cancellable via ctx; cancellation
// aborts without partial emission and the next Run re-aligns cleanly.
type CycleScheduler struct {
	Period     time.Duration
	PostOffset time.Duration

	RX RXFunc
	TX TXFunc

	// TXArmed reports whether auto-sequencing currently wants to transmit.
	TXArmed func() bool
	// EvenSlot selects which slot parity this station transmits on; TX only
	// fires when the cycle's slot parity matches.
	EvenSlot bool
}

// NewCycleScheduler returns a scheduler with the standard 0.5s post-boundary
// offset used by both FT8 and JS8 (spec §4.10).
func NewCycleScheduler(period time.Duration) *CycleScheduler {
	return &CycleScheduler{Period: period, PostOffset: 500 * time.Millisecond}
}

// Run executes cycles until ctx is cancelled. RX runs every cycle; TX runs
// only when TXArmed() is true and the cycle's slot parity matches EvenSlot.
func (s *CycleScheduler) Run(ctx context.Context) {
	for {
		cycleStart, wake := s.nextBoundary(time.Now())
		if !s.sleepUntil(ctx, wake) {
			return
		}

		if s.RX != nil {
			s.RX(ctx, cycleStart)
		}
		if ctx.Err() != nil {
			return
		}

		slotIndex := cycleStart.UnixNano() / s.Period.Nanoseconds()
		isEven := slotIndex%2 == 0
		if s.TX != nil && s.TXArmed != nil && s.TXArmed() && isEven == s.EvenSlot {
			s.TX(ctx, cycleStart)
		}
	}
}

// nextBoundary returns the start of the next period boundary and the wall
// time to wake at (PostOffset past that boundary).
func (s *CycleScheduler) nextBoundary(now time.Time) (cycleStart, wake time.Time) {
	period := s.Period
	elapsed := now.UnixNano() % period.Nanoseconds()
	boundary := now.Add(-time.Duration(elapsed))
	if elapsed > 0 {
		boundary = boundary.Add(period)
	}
	return boundary, boundary.Add(s.PostOffset)
}

// sleepUntil blocks until t or ctx cancellation, returning false on cancel.
func (s *CycleScheduler) sleepUntil(ctx context.Context, t time.Time) bool {
	timer := time.NewTimer(time.Until(t))
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
