package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/credkarma/credkarma/internal/models"
)

func testUser() models.User {
	return models.User{
		ID:         "u1",
		Username:   "alice",
		Email:      "alice@example.com",
		KarmaScore: 120,
		Role:       models.RoleUser,
	}
}

func TestGet_NoSession(t *testing.T) {
	store := NewStore(t.TempDir())
	if sess := store.Get(); sess != nil {
		t.Fatalf("expected nil session, got %+v", sess)
	}
	if store.Token() != "" {
		t.Errorf("expected empty token, got %q", store.Token())
	}
}

func TestSetThenGet(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Set("tok-123", testUser()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	sess := store.Get()
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.Token != "tok-123" {
		t.Errorf("expected token tok-123, got %q", sess.Token)
	}
	if sess.User.Username != "alice" || sess.User.Role != models.RoleUser {
		t.Errorf("unexpected user: %+v", sess.User)
	}
}

func TestSet_OverwritesPriorSession(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Set("old", testUser()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	admin := testUser()
	admin.ID = "u2"
	admin.Role = models.RoleAdmin
	if err := store.Set("new", admin); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	sess := store.Get()
	if sess == nil || sess.Token != "new" || sess.User.ID != "u2" {
		t.Fatalf("expected replaced session, got %+v", sess)
	}
}

func TestGet_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if sess := store.Get(); sess != nil {
		t.Fatalf("expected nil for malformed file, got %+v", sess)
	}
}

func TestGet_EmptyToken(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(`{"token":"","user":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if sess := store.Get(); sess != nil {
		t.Fatalf("expected nil for empty token, got %+v", sess)
	}
}

func TestClear_Idempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Set("tok", testUser()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if sess := store.Get(); sess != nil {
		t.Fatalf("expected nil after clear, got %+v", sess)
	}
	// Clearing again must not error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}
