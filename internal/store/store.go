// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/bluepixel/estatechat/internal/domain"
)

// Repository defines the interface for persisting chat sessions. Chat
// messages themselves are never stored; only the session tokens issued by
// the creation endpoint are.
type Repository interface {
	// CreateSession persists a freshly issued session record.
	CreateSession(ctx context.Context, session *domain.Session) error

	// GetSession retrieves a session by its ID, or nil if unknown.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// TouchSession updates the last_seen_at timestamp for a session.
	TouchSession(ctx context.Context, sessionID string, lastSeen time.Time) error

	// CleanupExpiredSessions removes sessions idle longer than ttl and
	// returns the number deleted.
	CleanupExpiredSessions(ctx context.Context, ttl time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
