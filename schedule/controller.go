package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cwsl/ftcore/ft8"
)

const (
	maxDecodedMessages = 200
	maxWaterfallRows   = 200
	audioBufferSeconds = 30
)

// StationInfo tracks the last time, frequency, SNR, and grid heard for one
// callsign (spec §5 "Station map").
type StationInfo struct {
	Callsign    string
	LastHeard   time.Time
	FrequencyHz float64
	SNRdB       float64
	Grid        string
}

// DecodedRecord is one decode delivered by the RX task to the controller.
// ID stamps each record with a stable identifier the way the teacher tags
// decoder/report events with google/uuid, so UI clients can key on a record
// rather than its (possibly repeated) message text.
type DecodedRecord struct {
	ID          uuid.UUID
	Message     ft8.Message
	FrequencyHz float64
	SNRdB       float64
	Time        time.Time
}

// Snapshot is an immutable view of controller state (spec §9 "immutable
// snapshot returned by the controller"): readers never see a partially
// mutated view, and never hold a lock.
type Snapshot struct {
	Messages []DecodedRecord
	Stations map[string]StationInfo
	Armed    bool
	QSOState QSOState
}

// Controller owns all user-visible station state (spec §5). Readers go
// through published Snapshots. Functions sent on Commands run on Run's
// goroutine; Deliver updates state on the caller's goroutine, serialized by
// the controller's mutex.
type Controller struct {
	mu       sync.Mutex
	messages []DecodedRecord
	stations map[string]StationInfo
	qso      *QSOMachine
	grid     string

	snapMu   sync.RWMutex
	snapshot Snapshot

	events   chan DecodedRecord
	Commands chan func(*Controller)
}

// NewController starts a controller for the given local callsign and grid
// square (the grid is only needed to fill out a CQ transmission).
func NewController(myCall, grid string) *Controller {
	c := &Controller{
		stations: make(map[string]StationInfo),
		qso:      NewQSOMachine(myCall),
		grid:     grid,
		events:   make(chan DecodedRecord, 64),
		Commands: make(chan func(*Controller), 16),
	}
	c.publish()
	return c
}

// Run drains the command channel until stop is closed, running each command
// on its own goroutine and publishing a new Snapshot after it. Deliver does
// not pass through Run.
func (c *Controller) Run(stop <-chan struct{}) {
	for {
		select {
		case cmd := <-c.Commands:
			cmd(c)
			c.publish()
		case <-stop:
			return
		}
	}
}

// Deliver records a new decode, updates the station map and QSO machine, and
// sends it on the event channel without blocking (the record is not sent
// when the channel's buffer is full). Bounded collections are enforced here,
// at insertion (spec §5 "no background compactor is required").
func (c *Controller) Deliver(rec DecodedRecord) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	c.mu.Lock()
	c.messages = append(c.messages, rec)
	if len(c.messages) > maxDecodedMessages {
		c.messages = c.messages[len(c.messages)-maxDecodedMessages:]
	}
	c.stations[rec.Message.From] = StationInfo{
		Callsign:    rec.Message.From,
		LastHeard:   rec.Time,
		FrequencyHz: rec.FrequencyHz,
		SNRdB:       rec.SNRdB,
		Grid:        rec.Message.Grid,
	}
	c.qso.Advance(rec.Message)
	c.mu.Unlock()

	c.publish()

	select {
	case c.events <- rec:
	default:
		// a slow subscriber never blocks decode delivery
	}
}

// NextTXMessage builds the message the auto-sequencer wants to transmit for
// the current QSO state (spec §4.10's CQ -> CallingDX -> ExchangingReport ->
// RogerReport -> 73 cycle), or false if nothing should be sent (disarmed, or
// no DX call latched yet). The cycle scheduler calls this once per armed,
// slot-matching TX cycle.
func (c *Controller) NextTXMessage() (ft8.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.qso.State() {
	case StateCQ:
		return ft8.Message{Variant: ft8.VariantCQ, From: c.qso.MyCall, Grid: c.grid}, true

	case StateCallingDX:
		if c.qso.DXCall == "" {
			return ft8.Message{}, false
		}
		report := "-10"
		if info, ok := c.stations[c.qso.DXCall]; ok {
			report = fmt.Sprintf("%+03.0f", info.SNRdB)
		}
		return ft8.Message{Variant: ft8.VariantResponse, From: c.qso.MyCall, To: c.qso.DXCall, Report: report}, true

	case StateExchangingReport:
		if c.qso.DXCall == "" {
			return ft8.Message{}, false
		}
		report := "-10"
		if info, ok := c.stations[c.qso.DXCall]; ok {
			report = fmt.Sprintf("%+03.0f", info.SNRdB)
		}
		return ft8.Message{Variant: ft8.VariantResponse, From: c.qso.MyCall, To: c.qso.DXCall, R: true, Report: report}, true

	case StateRogerReport:
		if c.qso.DXCall == "" {
			return ft8.Message{}, false
		}
		return ft8.Message{Variant: ft8.VariantConfirm, From: c.qso.MyCall, To: c.qso.DXCall, Report: "RR73"}, true

	default:
		return ft8.Message{}, false
	}
}

// Events returns the buffered channel of delivered decodes. It is one
// shared channel, not a per-subscriber fan-out: each record is received by
// a single reader.
func (c *Controller) Events() <-chan DecodedRecord {
	return c.events
}

// Snapshot returns the most recently published immutable state. Any number
// of readers may call this concurrently without blocking each other or the
// controller's mutator goroutine.
func (c *Controller) Snapshot() Snapshot {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()
	return c.snapshot
}

func (c *Controller) publish() {
	c.mu.Lock()
	msgs := make([]DecodedRecord, len(c.messages))
	copy(msgs, c.messages)
	stations := make(map[string]StationInfo, len(c.stations))
	for k, v := range c.stations {
		stations[k] = v
	}
	snap := Snapshot{
		Messages: msgs,
		Stations: stations,
		Armed:    c.qso.Armed(),
		QSOState: c.qso.State(),
	}
	c.mu.Unlock()

	c.snapMu.Lock()
	c.snapshot = snap
	c.snapMu.Unlock()
}
