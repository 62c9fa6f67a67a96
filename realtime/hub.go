package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event names pushed to connected dashboards.
const (
	EventOrderCreated    = "order.created"
	EventOrderUpdated    = "order.updated"
	EventOrderDeleted    = "order.deleted"
	EventOrdersGenerated = "orders.generated"
	EventBackupCompleted = "backup.completed"
)

// Hub fans out dashboard events to every connected websocket client.
type Hub struct {
	mu    sync.RWMutex
	conns map[*wsConn]struct{}
	log   *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{conns: make(map[*wsConn]struct{}), log: log}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds a dashboard connection and returns a handle for Unregister.
func (h *Hub) Register(conn *websocket.Conn) *wsConn {
	wc := &wsConn{conn: conn}
	h.mu.Lock()
	h.conns[wc] = struct{}{}
	h.mu.Unlock()
	return wc
}

// Unregister closes and forgets a connection.
func (h *Hub) Unregister(wc *wsConn) {
	h.mu.Lock()
	if _, ok := h.conns[wc]; ok {
		wc.conn.Close()
		delete(h.conns, wc)
	}
	h.mu.Unlock()
}

// Broadcast sends a typed event payload to every connected dashboard.
// Write failures drop the failing connection; other clients still receive
// the event.
func (h *Hub) Broadcast(event string, payload any) {
	h.mu.RLock()
	targets := make([]*wsConn, 0, len(h.conns))
	for wc := range h.conns {
		targets = append(targets, wc)
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": event, "data": payload}
	for _, wc := range targets {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			h.log.WithError(err).WithField("event", event).Warn("ws: dropping dashboard connection after failed write")
			h.Unregister(wc)
		}
	}
}
