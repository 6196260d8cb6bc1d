// Package schedule implements the wall-clock-aligned cycle scheduler and the
// QSO auto-sequencer that drives it (spec §4.10/§5), plus the controller
// that owns all user-visible station state.
package schedule

import (
	"github.com/google/uuid"

	"github.com/cwsl/ftcore/ft8"
)

// QSOState is one state of the five-state auto-sequencer (spec §4.10).
type QSOState int

const (
	StateCQ QSOState = iota
	StateCallingDX
	StateExchangingReport
	StateRogerReport
	State73
)

func (s QSOState) String() string {
	switch s {
	case StateCQ:
		return "CQ"
	case StateCallingDX:
		return "CallingDX"
	case StateExchangingReport:
		return "ExchangingReport"
	case StateRogerReport:
		return "RogerReport"
	case State73:
		return "73"
	default:
		return "unknown"
	}
}

// QSOMachine advances through CQ -> CallingDX -> ExchangingReport ->
// RogerReport -> 73 as messages addressed to the local call, or CQ calls from
// any station, arrive. At
// State73 auto-sequencing disarms TX. SessionID identifies this run of the
// sequencer (a fresh QSOMachine means a fresh SessionID) the way the
// teacher tags a session/report lifetime with google/uuid.
type QSOMachine struct {
	MyCall    string
	DXCall    string
	SessionID uuid.UUID
	state     QSOState
}

// NewQSOMachine starts a fresh auto-sequencer for the given local call.
func NewQSOMachine(myCall string) *QSOMachine {
	return &QSOMachine{MyCall: myCall, SessionID: uuid.New(), state: StateCQ}
}

// State returns the machine's current state.
func (q *QSOMachine) State() QSOState {
	return q.state
}

// Armed reports whether auto-sequencing should still key TX.
func (q *QSOMachine) Armed() bool {
	return q.state != State73
}

// Advance inspects a decoded message's variant and advances the machine,
// returning the new state. Messages not addressed to MyCall are ignored,
// except CQ messages, which pass whatever their To field holds; an empty
// MyCall accepts every message.
func (q *QSOMachine) Advance(msg ft8.Message) QSOState {
	if q.MyCall != "" && msg.To != q.MyCall && msg.Variant != ft8.VariantCQ {
		return q.state
	}

	switch q.state {
	case StateCQ:
		if msg.Variant == ft8.VariantCQ || msg.Variant == ft8.VariantResponse {
			q.DXCall = msg.From
			q.state = StateCallingDX
		}
	case StateCallingDX:
		if msg.Variant == ft8.VariantResponse && msg.From == q.DXCall {
			q.state = StateExchangingReport
		}
	case StateExchangingReport:
		if msg.Variant == ft8.VariantResponse && msg.From == q.DXCall && msg.Report != "" {
			q.state = StateRogerReport
		}
	case StateRogerReport:
		if msg.Variant == ft8.VariantConfirm && msg.From == q.DXCall {
			q.state = State73
		}
	case State73:
		// terminal; a fresh QSOMachine is created to start again.
	}
	return q.state
}
