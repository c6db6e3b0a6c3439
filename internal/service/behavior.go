package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/credkarma/credkarma/internal/models"
)

// BehaviorRepository defines the persistence operations required by the
// behavior service.
type BehaviorRepository interface {
	Insert(ctx context.Context, userID string, b models.Behavior) error
	ListByUser(ctx context.Context, userID string) ([]models.Behavior, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, behaviorID string) (models.Behavior, error)
	MarkAllRead(ctx context.Context, userID string) error
	SummaryByUser(ctx context.Context, userID string) ([]models.BehaviorSummaryItem, error)
}

// KarmaUpdater applies a signed delta to a user's karma score.
type KarmaUpdater interface {
	AddKarma(ctx context.Context, userID string, delta int) (int, error)
}

// BehaviorService implements behavior logging. Each logged behavior moves
// the owner's karma score by the points of its type.
type BehaviorService struct {
	behaviors BehaviorRepository
	karma     KarmaUpdater
	users     UserRepository
}

// NewBehaviorService constructs a new BehaviorService.
func NewBehaviorService(behaviors BehaviorRepository, karma KarmaUpdater, users UserRepository) *BehaviorService {
	return &BehaviorService{behaviors: behaviors, karma: karma, users: users}
}

// Create logs a new behavior for the user. The karma points come from the
// behavior type; a missing date defaults to now.
func (s *BehaviorService) Create(ctx context.Context, userID string, input models.NewBehavior) (models.Behavior, error) {
	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	b := models.Behavior{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Description: input.Description,
		KarmaPoints: input.Type.Points(),
		Date:        date,
		Metadata:    input.Metadata,
	}
	if err := s.behaviors.Insert(ctx, userID, b); err != nil {
		return models.Behavior{}, err
	}
	if _, err := s.karma.AddKarma(ctx, userID, b.KarmaPoints); err != nil {
		return models.Behavior{}, err
	}
	return b, nil
}

// List returns the user's behaviors newest first, with the unread count.
func (s *BehaviorService) List(ctx context.Context, userID string) (models.BehaviorList, error) {
	behaviors, err := s.behaviors.ListByUser(ctx, userID)
	if err != nil {
		return models.BehaviorList{}, err
	}
	unread, err := s.behaviors.UnreadCount(ctx, userID)
	if err != nil {
		return models.BehaviorList{}, err
	}
	return models.BehaviorList{Behaviors: behaviors, UnreadCount: unread}, nil
}

// MarkRead marks one behavior as read and returns it with the remaining
// unread count. Returns ErrBehaviorNotFound when the behavior does not
// exist or belongs to another user.
func (s *BehaviorService) MarkRead(ctx context.Context, userID, behaviorID string) (models.MarkReadResponse, error) {
	b, err := s.behaviors.MarkRead(ctx, userID, behaviorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MarkReadResponse{}, ErrBehaviorNotFound
		}
		return models.MarkReadResponse{}, err
	}
	unread, err := s.behaviors.UnreadCount(ctx, userID)
	if err != nil {
		return models.MarkReadResponse{}, err
	}
	return models.MarkReadResponse{Behavior: b, UnreadCount: unread}, nil
}

// MarkAllRead marks every behavior of the user as read.
func (s *BehaviorService) MarkAllRead(ctx context.Context, userID string) error {
	return s.behaviors.MarkAllRead(ctx, userID)
}

// Summary aggregates the user's behaviors per type alongside the current
// karma score.
func (s *BehaviorService) Summary(ctx context.Context, userID string) (models.BehaviorSummary, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.BehaviorSummary{}, err
	}
	items, err := s.behaviors.SummaryByUser(ctx, userID)
	if err != nil {
		return models.BehaviorSummary{}, err
	}
	return models.BehaviorSummary{CurrentKarma: user.KarmaScore, BehaviorSummary: items}, nil
}
