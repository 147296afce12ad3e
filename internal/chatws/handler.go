package chatws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bluepixel/estatechat/internal/domain"
	"github.com/bluepixel/estatechat/internal/store"
	"github.com/coder/websocket"
)

// Responder produces a reply for one inbound chat message. It never
// returns an error; failure paths resolve inside the response itself.
type Responder interface {
	Respond(ctx context.Context, msg domain.ChatMessage) domain.ChatResponse
}

// envelope is the wire framing for every WebSocket event.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// chatPayload is the inbound chat_message payload.
type chatPayload struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// errorPayload is sent to the offending participant only.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Handler upgrades connections and runs the per-connection event loop.
type Handler struct {
	repo          store.Repository
	hub           *Hub
	responder     Responder
	allowedOrigin string
	isDev         bool
}

// NewHandler creates a new WebSocket chat handler.
func NewHandler(repo store.Repository, hub *Hub, responder Responder, allowedOrigin string, isDev bool) *Handler {
	return &Handler{
		repo:          repo,
		hub:           hub,
		responder:     responder,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slog.Info("WebSocket connection request", "ip", r.RemoteAddr)

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "session ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr)
		}
	}()

	h.eventLoop(r.Context(), ws)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

// eventLoop reads inbound events until the connection closes. Each chat
// message is processed as its own goroutine so a slow upstream call never
// blocks the read loop.
func (h *Handler) eventLoop(ctx context.Context, ws *websocket.Conn) {
	var joinedSession string
	defer func() {
		if joinedSession != "" {
			h.hub.Leave(joinedSession, ws)
		}
	}()

	for {
		_, raw, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("WebSocket closed by client")
			} else {
				slog.Warn("WebSocket read error", "error", err)
			}
			return
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			h.sendError(ws, "", "invalid event envelope")
			continue
		}

		switch env.Event {
		case "join_session":
			sessionID := parseSessionID(env.Data)
			if sessionID == "" {
				h.sendError(ws, "", "join_session requires a session id")
				continue
			}
			if joinedSession != "" && joinedSession != sessionID {
				h.hub.Leave(joinedSession, ws)
			}
			joinedSession = sessionID
			h.hub.Join(sessionID, ws)
			h.writeEvent(ws, "joined", map[string]string{"sessionId": sessionID})

		case "chat_message":
			var payload chatPayload
			if err := json.Unmarshal(env.Data, &payload); err != nil {
				h.sendError(ws, "", "invalid chat_message payload")
				continue
			}
			if strings.TrimSpace(payload.Message) == "" {
				h.sendError(ws, payload.Message, "message is required")
				continue
			}
			if payload.SessionID == "" {
				payload.SessionID = joinedSession
			}
			if payload.SessionID == "" {
				h.sendError(ws, payload.Message, "join a session before chatting")
				continue
			}
			h.dispatch(ctx, payload)

		case "ping":
			h.writeEvent(ws, "pong", map[string]string{"status": "alive"})

		default:
			h.sendError(ws, "", "unknown event: "+env.Event)
		}
	}
}

// dispatch processes one chat message asynchronously and broadcasts the
// reply to every participant of the session, sender included. The
// processing context is detached from the connection so a sender who
// disconnects mid-flight does not cancel delivery to the rest.
func (h *Handler) dispatch(ctx context.Context, payload chatPayload) {
	msg := domain.ChatMessage{
		Text:      payload.Message,
		SessionID: payload.SessionID,
		UserID:    payload.UserID,
	}

	go func() {
		resp := h.responder.Respond(context.WithoutCancel(ctx), msg)
		h.hub.Broadcast(msg.SessionID, "ai_response", resp)
	}()

	// Record session activity without blocking the read loop.
	go func() {
		touchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.repo.TouchSession(touchCtx, msg.SessionID, time.Now()); err != nil {
			slog.Warn("Failed to touch session", "session_id", msg.SessionID, "error", err)
		}
	}()
}

func parseSessionID(data json.RawMessage) string {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return strings.TrimSpace(id)
	}
	var obj struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		return strings.TrimSpace(obj.SessionID)
	}
	return ""
}

// sendError emits an error event to the sending participant only.
func (h *Handler) sendError(ws *websocket.Conn, message, errMsg string) {
	h.writeEvent(ws, "error", errorPayload{Message: message, Error: errMsg})
}

func (h *Handler) writeEvent(ws *websocket.Conn, event string, v any) {
	data, err := json.Marshal(envelope{Event: event, Data: mustRaw(v)})
	if err != nil {
		slog.Error("Failed to marshal event", "event", event, "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := ws.Write(ctx, websocket.MessageText, data); err != nil {
		slog.Debug("Failed to write event", "event", event, "error", err)
	}
}
