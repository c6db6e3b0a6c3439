package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/credkarma/credkarma/internal/models"
)

// PostgresBehaviorRepository implements behavior persistence against a PostgreSQL database.
type PostgresBehaviorRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresBehaviorRepository creates a new PostgresBehaviorRepository using the provided *sql.DB.
func NewPostgresBehaviorRepository(db *sql.DB) *PostgresBehaviorRepository {
	return &PostgresBehaviorRepository{DB: db}
}

// Insert stores a new behavior row for the given user.
func (s *PostgresBehaviorRepository) Insert(ctx context.Context, userID string, b models.Behavior) error {
	var meta []byte
	if b.Metadata != nil {
		var err error
		meta, err = json.Marshal(b.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
	}
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO behaviors (id, user_id, type, description, karma_points, date, is_read, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, b.ID, userID, string(b.Type), b.Description, b.KarmaPoints, b.Date, b.IsRead, meta)
	if err != nil {
		return fmt.Errorf("Insert behavior: %w", err)
	}
	return nil
}

// ListByUser fetches all behaviors for the specified user, newest first.
func (s *PostgresBehaviorRepository) ListByUser(ctx context.Context, userID string) ([]models.Behavior, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, type, description, karma_points, date, is_read, metadata
		  FROM behaviors WHERE user_id = $1 ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ListByUser: %w", err)
	}
	defer rows.Close()

	var behaviors []models.Behavior
	for rows.Next() {
		var b models.Behavior
		var meta []byte
		if err := rows.Scan(&b.ID, &b.Type, &b.Description, &b.KarmaPoints, &b.Date, &b.IsRead, &meta); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &b.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		behaviors = append(behaviors, b)
	}
	return behaviors, rows.Err()
}

// UnreadCount returns the number of unread behaviors for the user.
func (s *PostgresBehaviorRepository) UnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM behaviors WHERE user_id = $1 AND is_read = false
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("UnreadCount: %w", err)
	}
	return count, nil
}

// MarkRead sets is_read on one behavior owned by the user and returns the
// updated row. Returns sql.ErrNoRows when the behavior does not exist or
// belongs to someone else.
func (s *PostgresBehaviorRepository) MarkRead(ctx context.Context, userID, behaviorID string) (models.Behavior, error) {
	var b models.Behavior
	var meta []byte
	err := s.DB.QueryRowContext(ctx, `
		UPDATE behaviors SET is_read = true
		 WHERE id = $1 AND user_id = $2
		RETURNING id, type, description, karma_points, date, is_read, metadata
	`, behaviorID, userID).Scan(&b.ID, &b.Type, &b.Description, &b.KarmaPoints, &b.Date, &b.IsRead, &meta)
	if err != nil {
		return models.Behavior{}, fmt.Errorf("MarkRead: %w", err)
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &b.Metadata); err != nil {
			return models.Behavior{}, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return b, nil
}

// MarkAllRead sets is_read on every behavior owned by the user.
func (s *PostgresBehaviorRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := s.DB.ExecContext(ctx, `
		UPDATE behaviors SET is_read = true WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("MarkAllRead: %w", err)
	}
	return nil
}

// SummaryByUser aggregates the user's behaviors per type.
func (s *PostgresBehaviorRepository) SummaryByUser(ctx context.Context, userID string) ([]models.BehaviorSummaryItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT type, COUNT(*), COALESCE(SUM(karma_points), 0)
		  FROM behaviors WHERE user_id = $1 GROUP BY type ORDER BY type
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("SummaryByUser: %w", err)
	}
	defer rows.Close()

	var items []models.BehaviorSummaryItem
	for rows.Next() {
		var item models.BehaviorSummaryItem
		if err := rows.Scan(&item.Type, &item.Count, &item.TotalKarma); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
