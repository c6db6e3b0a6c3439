package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/credkarma/credkarma/internal/models"
	"github.com/lib/pq"
)

// PostgresRewardRepository implements reward catalog persistence against a PostgreSQL database.
type PostgresRewardRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresRewardRepository creates a new PostgresRewardRepository using the provided *sql.DB.
func NewPostgresRewardRepository(db *sql.DB) *PostgresRewardRepository {
	return &PostgresRewardRepository{DB: db}
}

// List fetches the full reward catalog ordered by the karma threshold.
func (s *PostgresRewardRepository) List(ctx context.Context) ([]models.Reward, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, title, description, karma_required, category
		  FROM rewards ORDER BY karma_required ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("List rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.Reward
	for rows.Next() {
		var r models.Reward
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.KarmaRequired, &r.Category); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

// Get fetches one catalog entry. Returns sql.ErrNoRows when absent.
func (s *PostgresRewardRepository) Get(ctx context.Context, id string) (models.Reward, error) {
	var r models.Reward
	err := s.DB.QueryRowContext(ctx, `
		SELECT id, title, description, karma_required, category FROM rewards WHERE id = $1
	`, id).Scan(&r.ID, &r.Title, &r.Description, &r.KarmaRequired, &r.Category)
	if err != nil {
		return models.Reward{}, fmt.Errorf("Get reward: %w", err)
	}
	return r, nil
}

// UnlockedIDs returns the set of reward IDs the user has unlocked.
func (s *PostgresRewardRepository) UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT reward_id FROM unlocked_rewards WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("UnlockedIDs: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		unlocked[id] = true
	}
	return unlocked, rows.Err()
}

// InsertUnlock records that the user unlocked the reward. A duplicate unlock
// surfaces as a pq unique-violation error.
func (s *PostgresRewardRepository) InsertUnlock(ctx context.Context, userID, rewardID string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO unlocked_rewards (user_id, reward_id) VALUES ($1, $2)
	`, userID, rewardID)
	if err != nil {
		return fmt.Errorf("InsertUnlock: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is the Postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Seed inserts catalog entries, skipping IDs that already exist.
func (s *PostgresRewardRepository) Seed(ctx context.Context, rewards []models.Reward) error {
	for _, r := range rewards {
		_, err := s.DB.ExecContext(ctx, `
			INSERT INTO rewards (id, title, description, karma_required, category)
			VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING
		`, r.ID, r.Title, r.Description, r.KarmaRequired, string(r.Category))
		if err != nil {
			return fmt.Errorf("Seed: %w", err)
		}
	}
	return nil
}
