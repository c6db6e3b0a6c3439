package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/credkarma/credkarma/internal/models"
)

func TestInsertBehavior_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	b := models.Behavior{
		ID:          "b1",
		Type:        models.PaymentOnTime,
		Description: "Paid the card bill",
		KarmaPoints: 10,
		Date:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO behaviors`)).
		WithArgs("b1", "u1", "payment_on_time", "Paid the card bill", 10, b.Date, false, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Insert(context.Background(), "u1", b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListByUser_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "type", "description", "karma_points", "date", "is_read", "metadata"}).
		AddRow("b2", "credit_check", "Applied for a loan", -2, date, false, nil).
		AddRow("b1", "payment_on_time", "Paid the card bill", 10, date.Add(-time.Hour), true, []byte(`{"source":"manual"}`))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, type, description, karma_points, date, is_read, metadata`)).
		WithArgs("u1").
		WillReturnRows(rows)

	behaviors, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(behaviors) != 2 {
		t.Fatalf("expected 2 behaviors, got %d", len(behaviors))
	}
	if behaviors[0].ID != "b2" || behaviors[1].Metadata["source"] != "manual" {
		t.Errorf("unexpected behaviors returned: %+v", behaviors)
	}
}

func TestMarkRead_NotOwned(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE behaviors SET is_read = true`)).
		WithArgs("b9", "u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkRead(context.Background(), "u1", "b9")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestMarkAllRead_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE behaviors SET is_read = true WHERE user_id = $1`)).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.MarkAllRead(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSummaryByUser_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	rows := sqlmock.NewRows([]string{"type", "count", "sum"}).
		AddRow("payment_on_time", 3, 30).
		AddRow("credit_check", 1, -2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT type, COUNT(*), COALESCE(SUM(karma_points), 0)`)).
		WithArgs("u1").
		WillReturnRows(rows)

	items, err := repo.SummaryByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].TotalKarma != 30 {
		t.Errorf("unexpected summary: %+v", items)
	}
}

func TestUnreadCount_Success(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewPostgresBehaviorRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM behaviors WHERE user_id = $1 AND is_read = false`)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 unread, got %d", count)
	}
}
