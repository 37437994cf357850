package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// ChangeEvent tells connected viewers which collection changed so they can
// re-fetch and re-render. It carries no payload; the HTTP API stays the
// single source of truth.
type ChangeEvent struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

const (
	ScopeCatalog  = "catalog"
	ScopeUsers    = "users"
	ScopeBookings = "bookings"
	ScopeListings = "listings"
)

// Changed builds the standard event for a scope.
func Changed(scope string) ChangeEvent {
	return ChangeEvent{Type: scope + ".changed", Scope: scope}
}

// Hub fans change events out to every connected websocket viewer. Each
// connection carries its own write lock; gorilla/websocket allows at most
// one concurrent writer per connection.
type Hub struct {
	mutex       sync.RWMutex
	connections map[*websocket.Conn]*sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = &sync.Mutex{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast sends the event to every viewer, dropping connections that
// fail to take the write. Writes to one connection are serialized through
// its write lock so overlapping broadcasts never interleave frames.
func (h *Hub) Broadcast(event ChangeEvent) {
	type target struct {
		conn  *websocket.Conn
		write *sync.Mutex
	}

	h.mutex.RLock()
	targets := make([]target, 0, len(h.connections))
	for conn, write := range h.connections {
		targets = append(targets, target{conn: conn, write: write})
	}
	h.mutex.RUnlock()

	for _, t := range targets {
		t.write.Lock()
		err := t.conn.WriteJSON(event)
		t.write.Unlock()
		if err != nil {
			h.Unregister(t.conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}
