package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/credkarma/credkarma/internal/models"
	"github.com/credkarma/credkarma/internal/repository"
)

// RewardRepository defines the persistence operations required by the
// reward service.
type RewardRepository interface {
	List(ctx context.Context) ([]models.Reward, error)
	Get(ctx context.Context, id string) (models.Reward, error)
	UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error)
	InsertUnlock(ctx context.Context, userID, rewardID string) error
	Seed(ctx context.Context, rewards []models.Reward) error
}

// RewardService implements the reward catalog. Eligibility is computed
// server-side from the caller's current karma score.
type RewardService struct {
	rewards RewardRepository
	users   UserRepository
}

// NewRewardService constructs a new RewardService.
func NewRewardService(rewards RewardRepository, users UserRepository) *RewardService {
	return &RewardService{rewards: rewards, users: users}
}

// ListForUser returns the catalog decorated with the user's unlock status.
// CanUnlock is true only for rewards not yet unlocked whose threshold the
// user's karma meets.
func (s *RewardService) ListForUser(ctx context.Context, userID string) ([]models.RewardWithStatus, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.rewards.List(ctx)
	if err != nil {
		return nil, err
	}
	unlocked, err := s.rewards.UnlockedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.RewardWithStatus, 0, len(catalog))
	for _, r := range catalog {
		status := models.RewardWithStatus{Reward: r, IsUnlocked: unlocked[r.ID]}
		status.CanUnlock = !status.IsUnlocked && user.KarmaScore >= r.KarmaRequired
		result = append(result, status)
	}
	return result, nil
}

// Unlock records an unlock for the user. Returns ErrRewardNotFound,
// ErrAlreadyUnlocked, or ErrNotEnoughKarma when the unlock is not allowed.
func (s *RewardService) Unlock(ctx context.Context, userID, rewardID string) (models.UnlockResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.UnlockResponse{}, err
	}
	reward, err := s.rewards.Get(ctx, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UnlockResponse{}, ErrRewardNotFound
		}
		return models.UnlockResponse{}, err
	}
	if user.KarmaScore < reward.KarmaRequired {
		return models.UnlockResponse{}, ErrNotEnoughKarma
	}
	if err := s.rewards.InsertUnlock(ctx, userID, rewardID); err != nil {
		if repository.IsUniqueViolation(err) {
			return models.UnlockResponse{}, ErrAlreadyUnlocked
		}
		return models.UnlockResponse{}, err
	}

	return models.UnlockResponse{
		Message: "Reward unlocked successfully!",
		Reward:  models.RewardWithStatus{Reward: reward, IsUnlocked: true},
	}, nil
}

// Seed inserts the sample catalog, skipping entries that already exist.
func (s *RewardService) Seed(ctx context.Context) error {
	return s.rewards.Seed(ctx, SampleRewards())
}

// SampleRewards is the development catalog installed by POST /rewards/seed.
func SampleRewards() []models.Reward {
	return []models.Reward{
		{ID: "starter-cashback", Title: "1% Cashback Boost", Description: "A small cashback boost to get you started", KarmaRequired: 50, Category: models.CategoryCashback},
		{ID: "bronze-discount", Title: "Partner Store Discount", Description: "10% off at partner stores", KarmaRequired: 100, Category: models.CategoryDiscount},
		{ID: "silver-feature", Title: "Credit Report Insights", Description: "Early access to detailed credit report insights", KarmaRequired: 150, Category: models.CategoryFeature},
		{ID: "gold-cashback", Title: "5% Cashback Boost", Description: "A bigger cashback boost for steady payers", KarmaRequired: 250, Category: models.CategoryCashback},
		{ID: "gold-badge", Title: "Gold Achiever Badge", Description: "Show the gold badge on your profile", KarmaRequired: 300, Category: models.CategoryBadge},
		{ID: "platinum-badge", Title: "Platinum Legend Badge", Description: "The rarest badge of them all", KarmaRequired: 500, Category: models.CategoryBadge},
	}
}
