package jsbridge

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// WSBridge serves the same newline-delimited JSON contract over
// gorilla/websocket connections, the transport the teacher uses elsewhere
// for its other real-time feeds (e.g. dxcluster_websocket.go).
type WSBridge struct {
	upgrader  websocket.Upgrader
	onInbound func(Message)

	mu      sync.Mutex
	clients map[*websocket.Conn]*sync.Mutex
}

// NewWSBridge returns a WSBridge whose HandleWebSocket method can be
// registered on an http.ServeMux.
func NewWSBridge(onInbound func(Message)) *WSBridge {
	return &WSBridge{
		onInbound: onInbound,
		clients:   make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWebSocket upgrades the connection and serves it until it closes.
func (b *WSBridge) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("jsbridge: websocket upgrade failed: %v", err)
		return
	}

	b.mu.Lock()
	b.clients[conn] = &sync.Mutex{}
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.clients, conn)
		b.mu.Unlock()
		conn.Close()
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if b.onInbound != nil {
			b.onInbound(msg)
		}
	}
}

// Broadcast sends msg to every connected client.
func (b *WSBridge) Broadcast(msg Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn, writeMu := range b.clients {
		writeMu.Lock()
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("jsbridge: websocket write failed: %v", err)
		}
		writeMu.Unlock()
	}
}
