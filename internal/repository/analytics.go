package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/credkarma/credkarma/internal/models"
)

// PostgresAnalyticsRepository runs the aggregate queries behind the admin
// dashboard against a PostgreSQL database.
type PostgresAnalyticsRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAnalyticsRepository creates a new PostgresAnalyticsRepository using the provided *sql.DB.
func NewPostgresAnalyticsRepository(db *sql.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{DB: db}
}

// Summary returns the headline counters. A user is active when they logged
// at least one behavior after activeSince.
func (s *PostgresAnalyticsRepository) Summary(ctx context.Context, activeSince time.Time) (models.AnalyticsSummary, error) {
	var sum models.AnalyticsSummary
	err := s.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(AVG(karma_score), 0) FROM users),
			(SELECT COUNT(*) FROM behaviors),
			(SELECT COUNT(DISTINCT user_id) FROM behaviors WHERE date >= $1)
	`, activeSince).Scan(&sum.TotalUsers, &sum.AvgKarmaScore, &sum.TotalBehaviors, &sum.ActiveUsers)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("Summary: %w", err)
	}
	return sum, nil
}

// Users returns up to limit accounts ordered by karma score descending.
func (s *PostgresAnalyticsRepository) Users(ctx context.Context, limit int) ([]models.AnalyticsUser, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, username, email, karma_score, created_at
		  FROM users ORDER BY karma_score DESC, username ASC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("Users: %w", err)
	}
	defer rows.Close()

	var users []models.AnalyticsUser
	for rows.Next() {
		var u models.AnalyticsUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.KarmaScore, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// BehaviorStats aggregates behaviors per type across all users.
func (s *PostgresAnalyticsRepository) BehaviorStats(ctx context.Context) ([]models.BehaviorStat, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT type, COUNT(*), COALESCE(SUM(karma_points), 0)
		  FROM behaviors GROUP BY type ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("BehaviorStats: %w", err)
	}
	defer rows.Close()

	var stats []models.BehaviorStat
	for rows.Next() {
		var st models.BehaviorStat
		if err := rows.Scan(&st.Type, &st.Count, &st.TotalKarma); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// KarmaScores returns every user's karma score. The histogram bands are
// computed by the service so they stay aligned with the tier thresholds.
func (s *PostgresAnalyticsRepository) KarmaScores(ctx context.Context) ([]int, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT karma_score FROM users`)
	if err != nil {
		return nil, fmt.Errorf("KarmaScores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

// RecentActivity returns per-day behavior counts and karma change since the
// given cutoff, oldest day first.
func (s *PostgresAnalyticsRepository) RecentActivity(ctx context.Context, since time.Time) ([]models.ActivityPoint, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT TO_CHAR(date, 'YYYY-MM-DD') AS day, COUNT(*), COALESCE(SUM(karma_points), 0)
		  FROM behaviors WHERE date >= $1 GROUP BY day ORDER BY day ASC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("RecentActivity: %w", err)
	}
	defer rows.Close()

	var points []models.ActivityPoint
	for rows.Next() {
		var p models.ActivityPoint
		if err := rows.Scan(&p.Date, &p.Count, &p.KarmaChange); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// TopPerformers returns up to limit users ranked by karma gained since the
// given cutoff.
func (s *PostgresAnalyticsRepository) TopPerformers(ctx context.Context, since time.Time, limit int) ([]models.TopPerformer, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT u.username, COALESCE(SUM(b.karma_points), 0) AS gained, COUNT(b.id)
		  FROM users u JOIN behaviors b ON b.user_id = u.id
		 WHERE b.date >= $1
		 GROUP BY u.username ORDER BY gained DESC LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("TopPerformers: %w", err)
	}
	defer rows.Close()

	var performers []models.TopPerformer
	for rows.Next() {
		var p models.TopPerformer
		if err := rows.Scan(&p.Username, &p.KarmaGained, &p.BehaviorCount); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		performers = append(performers, p)
	}
	return performers, rows.Err()
}
