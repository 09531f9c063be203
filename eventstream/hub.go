// File: hub.go
// Role: websocket fan-out of an editor.Editor's Events channel, grounded
// on the upgrader/ReadJSON-loop pattern used for chat websockets in the
// retrieved corpus, adapted to a broadcast-only direction.
package eventstream

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pidforge/pidgraph/editor"
)

// Message is the JSON shape written to every connected socket for each
// editor.Event. Kind is the EventKind's string name rather than its raw
// int, so the wire format doesn't depend on iota ordering.
type Message struct {
	Kind    string   `json:"kind"`
	Command string   `json:"command,omitempty"`
	NodeIDs []string `json:"node_ids,omitempty"`
}

// Hub upgrades incoming HTTP connections to websockets and broadcasts
// every event read from an editor.Editor's Events channel to all of them.
// It accepts no inbound messages: a socket that sends anything is ignored
// until it closes, keeping this strictly a read path over the model.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub builds a Hub. A nil logger falls back to slog.Default().
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket and registers it as a
// broadcast recipient. Implements http.Handler so it mounts directly on a
// ServeMux (e.g. at "/events").
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("eventstream: upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("eventstream: client connected", "remote", r.RemoteAddr)

	// Drain and discard anything the client sends; this hub is broadcast
	// only. The loop's real purpose is detecting disconnects promptly.
	go func() {
		defer h.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) removeClient(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
	h.logger.Info("eventstream: client disconnected")
}

// Run reads from events until ctx is canceled or events is closed,
// broadcasting each one as JSON to every connected client. Intended to
// run in its own goroutine for the lifetime of the server.
func (h *Hub) Run(ctx context.Context, events <-chan editor.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			h.broadcast(Message{Kind: evt.Kind.String(), Command: evt.Command, NodeIDs: evt.NodeIDs})
		}
	}
}

func (h *Hub) broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Warn("eventstream: marshal failed", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("eventstream: write failed, dropping client", "error", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount reports the number of currently connected sockets, mainly
// for tests and /metrics-adjacent diagnostics.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
