package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// PostgresSessionRepository persists login sessions in PostgreSQL. Keeping
// sessions in the store (rather than in process memory) means the service
// holds no shared mutable state and survives restarts.
type PostgresSessionRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository using
// the provided *sql.DB.
func NewPostgresSessionRepository(db *sql.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{DB: db}
}

// Insert stores a new session token for userID expiring at expiresAt.
func (r *PostgresSessionRepository) Insert(ctx context.Context, token, userID string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, $3)`,
		token, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Resolve returns the user id bound to token, or ErrNotFound if the token is
// unknown or expired. Expired rows are filtered here; the background cleaner
// only reclaims their storage.
func (r *PostgresSessionRepository) Resolve(ctx context.Context, token string) (string, error) {
	var userID string
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT user_id FROM sessions WHERE token = $1 AND expires_at > now()`,
		token,
	).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Delete invalidates the token. Deleting an unknown token is not an error.
func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
