package service

import (
	"context"

	"github.com/credkarma/credkarma/internal/models"
)

// LeaderboardRepository provides the ranked user listing.
type LeaderboardRepository interface {
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// UserService serves the public user views.
type UserService struct {
	leaderboard LeaderboardRepository
}

// NewUserService constructs a new UserService.
func NewUserService(leaderboard LeaderboardRepository) *UserService {
	return &UserService{leaderboard: leaderboard}
}

// Leaderboard returns the top users by karma score, highest first.
func (s *UserService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return s.leaderboard.Leaderboard(ctx, leaderboardSize)
}
