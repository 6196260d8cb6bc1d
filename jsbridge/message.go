// Package jsbridge implements the optional JS8 network bridge (spec §6):
// newline-delimited JSON objects over a plain TCP listener or a
// gorilla/websocket connection.
package jsbridge

// Message is the wire shape of every bridge object (spec §6):
// {"type": string, "value": string, "params": {string: string}?}.
type Message struct {
	Type   string            `json:"type"`
	Value  string            `json:"value"`
	Params map[string]string `json:"params,omitempty"`
}

// Outbound message types the core emits.
const (
	TypeSendMessage = "TX.SEND_MESSAGE"
)

// Inbound message types the core consumes.
const (
	TypeRXDirected    = "RX.DIRECTED"
	TypeRXActivity    = "RX.ACTIVITY"
	TypeStationStatus = "STATION.STATUS"
)
