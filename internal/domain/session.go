package domain

import "time"

// Session groups transport participants that receive the same broadcast
// replies. Both identifiers are opaque tokens issued at creation time.
type Session struct {
	SessionID  string    `json:"sessionId"`
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"-"`
}
