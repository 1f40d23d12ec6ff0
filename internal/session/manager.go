// Package session issues, resolves, and revokes login session tokens.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskward/taskward/internal/repository"
)

// ErrUnauthenticated is returned when a token is missing, unknown, expired,
// or revoked.
var ErrUnauthenticated = errors.New("unauthenticated")

// Store defines the persistence operations required by the Manager.
type Store interface {
	// Insert stores a new token bound to userID until expiresAt.
	Insert(ctx context.Context, token, userID string, expiresAt time.Time) error
	// Resolve returns the user id for a live token, or repository.ErrNotFound.
	Resolve(ctx context.Context, token string) (string, error)
	// Delete revokes the token. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}

// Manager maps successful logins to opaque session tokens and resolves those
// tokens back to user identities. Tokens are random v4 UUIDs, so a client
// cannot mint a token for another user; state lives in the Store, so the
// Manager itself is stateless and safe for concurrent use.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager constructs a Manager issuing tokens valid for ttl.
func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Start issues a new session token bound to userID.
func (m *Manager) Start(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := m.store.Insert(ctx, token, userID, time.Now().Add(m.ttl)); err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id the token was issued for, or ErrUnauthenticated
// if the token is empty, unknown, or expired.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthenticated
	}
	userID, err := m.store.Resolve(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// End revokes the token. Subsequent Resolve calls on it fail with
// ErrUnauthenticated. Ending an already-ended session has no effect.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}
