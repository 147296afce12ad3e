// Package chatws provides the WebSocket chat transport: the event loop for
// each connection and the session hub that fans replies out to every
// participant of a session.
package chatws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds a single broadcast write to one participant.
const writeTimeout = 5 * time.Second

// Hub tracks the active connections of each session. Broadcast delivery is
// fire-and-forget: a participant that disconnects mid-send silently misses
// the message.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Join adds a connection to a session's broadcast group.
func (h *Hub) Join(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.sessions[sessionID]; !exists {
		h.sessions[sessionID] = make(map[*websocket.Conn]struct{})
	}
	h.sessions[sessionID][conn] = struct{}{}
	slog.Info("Participant joined session", "session_id", sessionID, "participants", len(h.sessions[sessionID]))
}

// Leave removes a connection from a session's broadcast group.
func (h *Hub) Leave(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.sessions[sessionID]; ok {
		if _, exists := conns[conn]; exists {
			delete(conns, conn)
			if len(conns) == 0 {
				delete(h.sessions, sessionID)
			}
			slog.Info("Participant left session", "session_id", sessionID)
		}
	}
}

// Participants returns the number of connections in a session.
func (h *Hub) Participants(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionID])
}

// Broadcast sends an event to every participant of a session, sender
// included. Delivery is at-most-once; write failures are logged and the
// remaining participants still receive the message.
func (h *Hub) Broadcast(sessionID, event string, payload any) {
	data, err := json.Marshal(envelope{Event: event, Data: mustRaw(payload)})
	if err != nil {
		slog.Error("Failed to marshal broadcast payload", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.sessions[sessionID]))
	for conn := range h.sessions[sessionID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
			slog.Debug("Broadcast write failed", "session_id", sessionID, "error", err)
		}
		cancel()
	}
}

func mustRaw(payload any) json.RawMessage {
	data, err := json.Marshal(payload)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
