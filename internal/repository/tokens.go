package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresTokenRepository stores issued bearer tokens. Expired rows are
// ignored on lookup and removed by the background cleaner.
type PostgresTokenRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTokenRepository creates a new PostgresTokenRepository with the given database connection.
func NewPostgresTokenRepository(db *sql.DB) *PostgresTokenRepository {
	return &PostgresTokenRepository{DB: db}
}

// Insert stores a freshly issued token with its expiry.
func (s *PostgresTokenRepository) Insert(ctx context.Context, token, userID string, expiresAt time.Time) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO tokens (token, user_id, expires_at) VALUES ($1, $2, $3)
	`, token, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("Insert token: %w", err)
	}
	return nil
}

// Lookup resolves a token to its user ID. Returns sql.ErrNoRows for unknown
// or expired tokens.
func (s *PostgresTokenRepository) Lookup(ctx context.Context, token string) (string, error) {
	var userID string
	err := s.DB.QueryRowContext(ctx, `
		SELECT user_id FROM tokens WHERE token = $1 AND expires_at > $2
	`, token, time.Now()).Scan(&userID)
	if err != nil {
		return "", fmt.Errorf("Lookup token: %w", err)
	}
	return userID, nil
}

// Delete revokes a token. Deleting an unknown token is not an error.
func (s *PostgresTokenRepository) Delete(ctx context.Context, token string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("Delete token: %w", err)
	}
	return nil
}
