package jsbridge

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"
)

func TestTCPBridgeReceivesInbound(t *testing.T) {
	received := make(chan Message, 1)
	bridge, err := ListenTCP("127.0.0.1:0", func(m Message) { received <- m })
	if err != nil {
		t.Fatalf("ListenTCP: %v", err)
	}
	defer bridge.Close()

	conn, err := net.Dial("tcp", bridge.listener.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	msg := Message{Type: TypeSendMessage, Value: "CQ CQ CQ"}
	data, _ := json.Marshal(msg)
	conn.Write(append(data, '\n'))

	select {
	case got := <-received:
		if got.Type != TypeSendMessage || got.Value != "CQ CQ CQ" {
			t.Fatalf("got %+v, want %+v", got, msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for inbound message")
	}
}

func TestTCPBridgeBroadcast(t *testing.T) {
	bridge, err := ListenTCP("127.0.0.1:0", nil)
	if err != nil {
		t.Fatalf("ListenTCP: %v", err)
	}
	defer bridge.Close()

	conn, err := net.Dial("tcp", bridge.listener.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// Give the accept loop a moment to register the client.
	time.Sleep(50 * time.Millisecond)

	want := Message{Type: TypeRXActivity, Value: "DL1ABC heard"}
	if err := bridge.Broadcast(want); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	var got Message
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Type != want.Type || got.Value != want.Value {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
