package schedule

import (
	"context"
	"testing"
	"time"
)

func TestCycleSchedulerRunsRXEachCycle(t *testing.T) {
	s := &CycleScheduler{Period: 200 * time.Millisecond, PostOffset: 10 * time.Millisecond}

	var rxCount int
	done := make(chan struct{})
	s.RX = func(ctx context.Context, cycleStart time.Time) {
		rxCount++
		if rxCount == 2 {
			close(done)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for 2 RX cycles, got %d", rxCount)
	}
	cancel()
}

func TestCycleSchedulerTXOnlyOnArmedMatchingSlot(t *testing.T) {
	s := &CycleScheduler{Period: 100 * time.Millisecond, PostOffset: 5 * time.Millisecond}
	s.TXArmed = func() bool { return false }

	var txCalled bool
	s.TX = func(ctx context.Context, cycleStart time.Time) { txCalled = true }
	s.RX = func(ctx context.Context, cycleStart time.Time) {}

	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	s.Run(ctx)

	if txCalled {
		t.Fatalf("TX should not fire while TXArmed() returns false")
	}
}

func TestCycleSchedulerCancellation(t *testing.T) {
	s := NewCycleScheduler(50 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	returned := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return promptly after cancellation")
	}
}
