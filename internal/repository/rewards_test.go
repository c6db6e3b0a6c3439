package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/credkarma/credkarma/internal/models"
	"github.com/lib/pq"
)

func TestListRewards_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresRewardRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "karma_required", "category"}).
		AddRow("r1", "5% Cashback", "Cashback on groceries", 50, "cashback").
		AddRow("r2", "Gold Badge", "Show off your tier", 250, "badge")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, description, karma_required, category`)).
		WillReturnRows(rows)

	rewards, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rewards) != 2 || rewards[0].ID != "r1" || rewards[1].Category != models.CategoryBadge {
		t.Errorf("unexpected rewards returned: %+v", rewards)
	}
}

func TestUnlockedIDs_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresRewardRepository(db)

	rows := sqlmock.NewRows([]string{"reward_id"}).AddRow("r1").AddRow("r3")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT reward_id FROM unlocked_rewards WHERE user_id = $1`)).
		WithArgs("u1").
		WillReturnRows(rows)

	unlocked, err := repo.UnlockedIDs(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unlocked["r1"] || !unlocked["r3"] || unlocked["r2"] {
		t.Errorf("unexpected unlocked set: %v", unlocked)
	}
}

func TestInsertUnlock_Duplicate(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresRewardRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO unlocked_rewards`)).
		WithArgs("u1", "r1").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.InsertUnlock(context.Background(), "u1", "r1")
	if err == nil {
		t.Fatal("expected error for duplicate unlock")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestIsUniqueViolation_OtherError(t *testing.T) {
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain error reported as unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil reported as unique violation")
	}
}

func TestSeed_SkipsConflicts(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresRewardRepository(db)

	rewards := []models.Reward{
		{ID: "r1", Title: "5% Cashback", Description: "Cashback on groceries", KarmaRequired: 50, Category: models.CategoryCashback},
		{ID: "r2", Title: "Gold Badge", Description: "Show off your tier", KarmaRequired: 250, Category: models.CategoryBadge},
	}
	for _, r := range rewards {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO rewards`)).
			WithArgs(r.ID, r.Title, r.Description, r.KarmaRequired, string(r.Category)).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := repo.Seed(context.Background(), rewards); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
