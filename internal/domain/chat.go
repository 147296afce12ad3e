// Package domain defines the core data records exchanged by the service.
package domain

import "time"

// ChatMessage is one inbound user message. It lives for the duration of a
// single processing pass and is never persisted.
type ChatMessage struct {
	Text      string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

// ChatResponse is the reply broadcast to every participant of a session.
type ChatResponse struct {
	ResponseText    string                    `json:"response"`
	SessionID       string                    `json:"sessionId"`
	TimestampUTC    time.Time                 `json:"timestamp"`
	ToolsUsed       []string                  `json:"toolsUsed"`
	PropertyData    map[string]map[string]any `json:"propertyData,omitempty"`
	ExecutionTimeMs int64                     `json:"executionTimeMs"`
}
