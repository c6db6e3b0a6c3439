package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler records whether it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

type stubResolver struct {
	userID string
	err    error
}

func (s *stubResolver) ResolveToken(ctx context.Context, token string) (string, error) {
	return s.userID, s.err
}

func TestBearerAuth_NoHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&stubResolver{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&stubResolver{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for a non-bearer header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_InvalidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&stubResolver{err: errors.New("expired")})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	h.ServeHTTP(rec, req)

	if dummy.called {
		t.Error("did not expect next handler to be called for an invalid token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", rec.Code)
	}
}

func TestBearerAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := BearerAuth(&stubResolver{userID: "u42"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if got := GetUserIDFromContext(dummy.ctx); got != "u42" {
		t.Errorf("GetUserIDFromContext = %q; want u42", got)
	}
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	if got := GetUserIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
