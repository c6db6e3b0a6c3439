package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/credkarma/credkarma/internal/models"
)

// staticToken implements TokenSource with a fixed value.
type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "alice"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok-abc"))
	user, err := c.Users.Me(context.Background())
	if err != nil {
		t.Fatalf("Me failed: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected Authorization header %q, got %q", "Bearer tok-abc", gotAuth)
	}
	if user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Token: "t"})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken(""))
	if _, err := c.Auth.Login(context.Background(), models.LoginCredentials{Username: "a", Password: "secret1"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if sawHeader {
		t.Error("expected no Authorization header without a session")
	}
}

func TestDo_ServerErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Message: "Username already taken",
			Errors:  []models.FieldError{{Field: "username", Message: "taken"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Auth.Register(context.Background(), models.RegisterData{})
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if serr.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", serr.StatusCode)
	}
	if serr.Message != "Username already taken" {
		t.Errorf("expected server message verbatim, got %q", serr.Message)
	}
	if len(serr.Errors) != 1 || serr.Errors[0].Field != "username" {
		t.Errorf("expected field errors carried through, got %+v", serr.Errors)
	}
}

func TestDo_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Users.Me(context.Background())
	var serr *ServerError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *ServerError, got %v", err)
	}
	if serr.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", serr.StatusCode)
	}
	if serr.Error() == "" {
		t.Error("expected a non-empty fallback message")
	}
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, nil)
	_, err := c.Users.Me(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	var serr *ServerError
	if errors.As(err, &serr) {
		t.Errorf("transport failure must not be a ServerError: %v", err)
	}
}

func TestResourcePaths(t *testing.T) {
	var paths []string
	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c := New(srv.URL+"/api/", staticToken("t")) // trailing slash must not double up

	_, _ = c.Behaviors.List(ctx)
	_, _ = c.Behaviors.Create(ctx, models.NewBehavior{Type: models.PaymentOnTime, Description: "d"})
	_, _ = c.Behaviors.Summary(ctx)
	_, _ = c.Behaviors.MarkRead(ctx, "b1")
	_ = c.Behaviors.MarkAllRead(ctx)
	_, _ = c.Rewards.Unlock(ctx, "r1")
	_ = c.Rewards.Seed(ctx)
	_ = c.Auth.Logout(ctx)

	wantPaths := []string{
		"/api/behaviors",
		"/api/behaviors",
		"/api/behaviors/summary",
		"/api/behaviors/b1/read",
		"/api/behaviors/read-all",
		"/api/rewards/r1/unlock",
		"/api/rewards/seed",
		"/api/auth/logout",
	}
	wantMethods := []string{"GET", "POST", "GET", "PUT", "PUT", "POST", "POST", "POST"}

	if len(paths) != len(wantPaths) {
		t.Fatalf("expected %d requests, got %d", len(wantPaths), len(paths))
	}
	for i := range wantPaths {
		if paths[i] != wantPaths[i] {
			t.Errorf("request %d: expected path %s, got %s", i, wantPaths[i], paths[i])
		}
		if methods[i] != wantMethods[i] {
			t.Errorf("request %d: expected method %s, got %s", i, wantMethods[i], methods[i])
		}
	}
}
