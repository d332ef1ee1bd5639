// Package stores holds the ephemeral server state: verification challenges,
// sessions, presence and offline message queues. Everything here has a TTL
// and can be rebuilt by clients reconnecting, so it lives in Redis rather
// than Postgres.
package stores

import (
	"context"
	"time"
)

// Session is an authenticated device session. Tokens are opaque random
// strings; revocation is immediate because every check reads the store.
type Session struct {
	Token      string    `json:"token"`
	IdentityID string    `json:"identity_id"`
	OrgID      string    `json:"org_id"`
	DeviceInfo string    `json:"device_info"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChallengeStore keeps one-time verification codes. A code is bound to
// (orgID, phone), expires after the configured TTL and is consumed by Take.
type ChallengeStore interface {
	// Set stores code for the account, replacing any previous code.
	Set(ctx context.Context, orgID, phone, code string) error
	// Take returns the stored code and removes it atomically. A second Take
	// for the same account returns common.ErrInvalidOrExpiredCode.
	Take(ctx context.Context, orgID, phone string) (string, error)
}

// SessionStore issues and resolves opaque session tokens.
type SessionStore interface {
	// Create stores the session and returns its token.
	Create(ctx context.Context, session *Session) (string, error)
	// Get resolves a token. Unknown or expired tokens return
	// common.ErrUnauthorized.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete revokes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// DeleteOthers revokes every session of the identity except keepToken
	// and reports how many were revoked.
	DeleteOthers(ctx context.Context, identityID, keepToken string) (int, error)
}

// PresenceRegistry tracks which identities have live relay connections.
// An identity is online while at least one connection holds a fresh
// heartbeat.
type PresenceRegistry interface {
	// Up records a new connection for the identity.
	Up(ctx context.Context, identityID, connID string) error
	// Heartbeat refreshes the connection's liveness.
	Heartbeat(ctx context.Context, identityID, connID string) error
	// Down removes the connection and reports whether it was the identity's
	// last one.
	Down(ctx context.Context, identityID, connID string) (last bool, err error)
	// Online reports whether the identity has at least one live connection.
	Online(ctx context.Context, identityID string) (bool, error)
}

// OfflineQueue buffers relay frames for identities with no live connection.
// Order is preserved; entries expire with the queue TTL.
type OfflineQueue interface {
	// Enqueue appends a frame to the identity's queue.
	Enqueue(ctx context.Context, identityID string, frame []byte) error
	// Peek returns the head frame without removing it, or
	// common.ErrNotFound when the queue is empty.
	Peek(ctx context.Context, identityID string) ([]byte, error)
	// Pop removes the head frame. Popping an empty queue is not an error.
	Pop(ctx context.Context, identityID string) error
	// Len returns the number of buffered frames.
	Len(ctx context.Context, identityID string) (int64, error)
}
