package view

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/credkarma/credkarma/internal/models"
)

func feedItems(n int) []models.Behavior {
	out := make([]models.Behavior, n)
	for i := range out {
		out[i] = models.Behavior{
			ID:          "b",
			Type:        models.PaymentOnTime,
			Description: "Paid a bill",
			KarmaPoints: 10,
			Date:        time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
			IsRead:      true,
		}
	}
	return out
}

func TestFeed_Empty(t *testing.T) {
	var buf bytes.Buffer
	Feed(&buf, nil, 1)
	if !strings.Contains(buf.String(), "No behaviors recorded yet.") {
		t.Errorf("expected empty state, got %q", buf.String())
	}
}

func TestFeed_Pagination(t *testing.T) {
	var buf bytes.Buffer
	Feed(&buf, feedItems(25), 3)
	out := buf.String()
	if !strings.Contains(out, "Showing 21-25 of 25 behaviors") {
		t.Errorf("expected range line for last page, got %q", out)
	}
	if !strings.Contains(out, "1 2 [3]") {
		t.Errorf("expected page window with current page marked, got %q", out)
	}
}

func TestFeed_PageClamped(t *testing.T) {
	var buf bytes.Buffer
	Feed(&buf, feedItems(25), 99)
	if !strings.Contains(buf.String(), "Showing 21-25 of 25 behaviors") {
		t.Errorf("expected clamp to last page, got %q", buf.String())
	}
}

func TestKarma_ShowsTierAndLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	user := models.User{ID: "u1", Username: "alice", KarmaScore: 120}
	board := []models.LeaderboardEntry{
		{ID: "u9", Username: "bob", KarmaScore: 300},
		{ID: "u1", Username: "alice", KarmaScore: 120},
	}
	Karma(&buf, user, models.BehaviorSummary{}, board)
	out := buf.String()
	if !strings.Contains(out, "120 points (Silver)") {
		t.Errorf("expected tier line, got %q", out)
	}
	if !strings.Contains(out, "Progress to Gold") {
		t.Errorf("expected progress line, got %q", out)
	}
	if !strings.Contains(out, "-> #2  alice") {
		t.Errorf("expected current user marked in leaderboard, got %q", out)
	}
}

func TestRewards_States(t *testing.T) {
	var buf bytes.Buffer
	user := models.User{KarmaScore: 100}
	rewards := []models.RewardWithStatus{
		{Reward: models.Reward{ID: "r1", Title: "Cashback", KarmaRequired: 50, Category: models.CategoryCashback}, IsUnlocked: true},
		{Reward: models.Reward{ID: "r2", Title: "Discount", KarmaRequired: 100, Category: models.CategoryDiscount}, CanUnlock: true},
		{Reward: models.Reward{ID: "r3", Title: "Badge", KarmaRequired: 500, Category: models.CategoryBadge}},
	}
	Rewards(&buf, rewards, user)
	out := buf.String()
	if !strings.Contains(out, "unlocked ✓") {
		t.Errorf("expected unlocked marker, got %q", out)
	}
	if !strings.Contains(out, "run 'unlock r2'") {
		t.Errorf("expected unlock hint, got %q", out)
	}
	if !strings.Contains(out, "need 400 more karma") {
		t.Errorf("expected karma shortfall, got %q", out)
	}
}

func TestAnalytics_Sections(t *testing.T) {
	var buf bytes.Buffer
	Analytics(&buf, models.DashboardAnalytics{
		Summary: models.AnalyticsSummary{TotalUsers: 4, AvgKarmaScore: 87.5, TotalBehaviors: 31, ActiveUsers: 3},
		KarmaDistribution: []models.KarmaBucket{
			{Range: "0-49", Count: 1, Percentage: 25},
			{Range: "500+", Count: 1, Percentage: 25},
		},
	})
	out := buf.String()
	if !strings.Contains(out, "Average karma:   87.5") {
		t.Errorf("expected summary, got %q", out)
	}
	if !strings.Contains(out, "0-49") || !strings.Contains(out, "500+") {
		t.Errorf("expected distribution buckets, got %q", out)
	}
}
