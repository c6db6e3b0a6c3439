package service

import (
	"context"
	"time"

	"github.com/credkarma/credkarma/internal/models"
)

// AnalyticsRepository defines the aggregate queries required by the
// dashboard service.
type AnalyticsRepository interface {
	Summary(ctx context.Context, activeSince time.Time) (models.AnalyticsSummary, error)
	Users(ctx context.Context, limit int) ([]models.AnalyticsUser, error)
	BehaviorStats(ctx context.Context) ([]models.BehaviorStat, error)
	KarmaScores(ctx context.Context) ([]int, error)
	RecentActivity(ctx context.Context, since time.Time) ([]models.ActivityPoint, error)
	TopPerformers(ctx context.Context, since time.Time, limit int) ([]models.TopPerformer, error)
}

const (
	activityWindow  = 7 * 24 * time.Hour
	performerWindow = 30 * 24 * time.Hour
	leaderboardSize = 10
	performerCount  = 5
)

// DashboardService assembles the admin analytics snapshot.
type DashboardService struct {
	analytics AnalyticsRepository
	users     UserRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(analytics AnalyticsRepository, users UserRepository) *DashboardService {
	return &DashboardService{analytics: analytics, users: users}
}

// Analytics builds the full dashboard snapshot. Returns ErrForbidden when
// the caller is not an admin.
func (s *DashboardService) Analytics(ctx context.Context, userID string) (models.DashboardAnalytics, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	if user.Role != models.RoleAdmin {
		return models.DashboardAnalytics{}, ErrForbidden
	}

	now := time.Now()
	summary, err := s.analytics.Summary(ctx, now.Add(-performerWindow))
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	leaderboard, err := s.analytics.Users(ctx, leaderboardSize)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	stats, err := s.analytics.BehaviorStats(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	scores, err := s.analytics.KarmaScores(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	activity, err := s.analytics.RecentActivity(ctx, now.Add(-activityWindow))
	if err != nil {
		return models.DashboardAnalytics{}, err
	}
	performers, err := s.analytics.TopPerformers(ctx, now.Add(-performerWindow), performerCount)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}

	return models.DashboardAnalytics{
		Summary:           summary,
		Leaderboard:       leaderboard,
		BehaviorStats:     stats,
		KarmaDistribution: KarmaDistribution(scores),
		RecentActivity:    activity,
		TopPerformers:     performers,
	}, nil
}

// karmaBands are the histogram bands, aligned with the tier thresholds.
var karmaBands = []struct {
	label string
	low   int
	high  int // exclusive; -1 means unbounded
}{
	{"0-49", 0, 50},
	{"50-99", 50, 100},
	{"100-249", 100, 250},
	{"250-499", 250, 500},
	{"500+", 500, -1},
}

// KarmaDistribution buckets the scores into the tier-aligned bands.
// Negative scores land in the lowest band.
func KarmaDistribution(scores []int) []models.KarmaBucket {
	counts := make([]int, len(karmaBands))
	for _, score := range scores {
		placed := false
		for i, band := range karmaBands {
			if score < band.high || band.high == -1 {
				counts[i]++
				placed = true
				break
			}
		}
		if !placed {
			counts[len(counts)-1]++
		}
	}

	total := len(scores)
	buckets := make([]models.KarmaBucket, len(karmaBands))
	for i, band := range karmaBands {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[i]) / float64(total) * 100
		}
		buckets[i] = models.KarmaBucket{
			Range:      band.label,
			Count:      counts[i],
			Percentage: pct,
		}
	}
	return buckets
}
