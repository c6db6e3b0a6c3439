// Package repository provides persistence implementations for the
// development backend using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/credkarma/credkarma/internal/models"
)

// PostgresUserRepository implements user account operations against a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
// db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// UserExists checks whether a user with the given username or email exists.
// It returns true if either column matches, false otherwise.
func (s *PostgresUserRepository) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a new user row with the given password hash.
// The karma score starts at zero.
func (s *PostgresUserRepository) CreateUser(ctx context.Context, u models.User, passwordHash string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, karma_score, role)
		VALUES ($1, $2, $3, $4, 0, $5)
	`, u.ID, u.Username, u.Email, passwordHash, string(u.Role))
	if err != nil {
		return fmt.Errorf("CreateUser: %w", err)
	}
	return nil
}

// GetByLogin fetches a user whose username or email equals login, along with
// the stored password hash. Returns sql.ErrNoRows when no row matches.
func (s *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (models.User, string, error) {
	var u models.User
	var hash string
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, username, email, karma_score, role, password_hash
		  FROM users WHERE username = $1 OR email = $1
	`, login).Scan(&u.ID, &u.Username, &u.Email, &u.KarmaScore, &u.Role, &hash)
	if err != nil {
		return models.User{}, "", fmt.Errorf("GetByLogin: %w", err)
	}
	return u, hash, nil
}

// GetByID fetches a user by primary key. Returns sql.ErrNoRows when absent.
func (s *PostgresUserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, username, email, karma_score, role FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.KarmaScore, &u.Role)
	if err != nil {
		return models.User{}, fmt.Errorf("GetByID: %w", err)
	}
	return u, nil
}

// AddKarma applies a signed delta to the user's karma score and returns the
// new value.
func (s *PostgresUserRepository) AddKarma(ctx context.Context, userID string, delta int) (int, error) {
	var score int
	err := s.DB.QueryRowContext(ctx, `
		UPDATE users SET karma_score = karma_score + $1 WHERE id = $2 RETURNING karma_score
	`, delta, userID).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("AddKarma: %w", err)
	}
	return score, nil
}

// Leaderboard returns up to limit users ordered by karma score descending.
func (s *PostgresUserRepository) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, username, karma_score FROM users ORDER BY karma_score DESC, username ASC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("Leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.KarmaScore); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
