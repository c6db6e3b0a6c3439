package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/credkarma/credkarma/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	cleanup := func() {
		db.Close()
	}
	return db, mock, cleanup
}

func TestUserExists_Found(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`)).
		WithArgs("alice", "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.UserExists(context.Background(), "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists = true")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	u := models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("u1", "alice", "alice@example.com", "hash", "user").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateUser(context.Background(), u, "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetByLogin_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "email", "karma_score", "role", "password_hash"}).
		AddRow("u1", "alice", "alice@example.com", 120, "user", "hash")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, karma_score, role, password_hash`)).
		WithArgs("alice").
		WillReturnRows(rows)

	u, hash, err := repo.GetByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != "u1" || u.KarmaScore != 120 || hash != "hash" {
		t.Errorf("unexpected user returned: %+v hash=%q", u, hash)
	}
}

func TestGetByLogin_Error(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, email, karma_score, role, password_hash`)).
		WithArgs("ghost").
		WillReturnError(errors.New("query fail"))

	_, _, err := repo.GetByLogin(context.Background(), "ghost")
	if err == nil || !regexp.MustCompile(`GetByLogin`).MatchString(err.Error()) {
		t.Errorf("expected GetByLogin error, got %v", err)
	}
}

func TestAddKarma_ReturnsNewScore(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE users SET karma_score = karma_score + $1 WHERE id = $2 RETURNING karma_score`)).
		WithArgs(10, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"karma_score"}).AddRow(130))

	score, err := repo.AddKarma(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 130 {
		t.Errorf("expected score 130, got %d", score)
	}
}

func TestLeaderboard_Order(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username", "karma_score"}).
		AddRow("u2", "bob", 300).
		AddRow("u1", "alice", 120)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, karma_score FROM users ORDER BY karma_score DESC`)).
		WithArgs(10).
		WillReturnRows(rows)

	entries, err := repo.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].Username != "bob" {
		t.Errorf("unexpected leaderboard: %+v", entries)
	}
}
