package guard

import (
	"testing"

	"github.com/credkarma/credkarma/internal/client/session"
	"github.com/credkarma/credkarma/internal/models"
)

func userSession(role models.UserRole) *session.Session {
	return &session.Session{
		Token: "tok",
		User:  models.User{ID: "u1", Username: "alice", Role: role},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		sess     *session.Session
		route    Route
		want     Route
		redirect bool
	}{
		{"unauthenticated login renders", nil, RouteLogin, RouteLogin, false},
		{"unauthenticated register renders", nil, RouteRegister, RouteRegister, false},
		{"unauthenticated feed redirects to login", nil, RouteFeed, RouteLogin, true},
		{"unauthenticated analytics redirects to login", nil, RouteAnalytics, RouteLogin, true},
		{"unauthenticated root redirects to login", nil, RouteRoot, RouteLogin, true},

		{"user login redirects to feed", userSession(models.RoleUser), RouteLogin, RouteFeed, true},
		{"admin login redirects to analytics", userSession(models.RoleAdmin), RouteLogin, RouteAnalytics, true},
		{"user root redirects to feed", userSession(models.RoleUser), RouteRoot, RouteFeed, true},
		{"admin root redirects to analytics", userSession(models.RoleAdmin), RouteRoot, RouteAnalytics, true},

		{"user feed renders", userSession(models.RoleUser), RouteFeed, RouteFeed, false},
		{"user rewards renders", userSession(models.RoleUser), RouteRewards, RouteRewards, false},
		{"user karma redirects to feed", userSession(models.RoleUser), RouteKarma, RouteFeed, true},
		{"user analytics redirects to feed", userSession(models.RoleUser), RouteAnalytics, RouteFeed, true},

		{"admin karma renders", userSession(models.RoleAdmin), RouteKarma, RouteKarma, false},
		{"admin analytics renders", userSession(models.RoleAdmin), RouteAnalytics, RouteAnalytics, false},
		{"admin feed renders", userSession(models.RoleAdmin), RouteFeed, RouteFeed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.sess, tt.route)
			if got.Route != tt.want {
				t.Errorf("expected route %s, got %s", tt.want, got.Route)
			}
			if got.Redirected != tt.redirect {
				t.Errorf("expected redirected=%v, got %v", tt.redirect, got.Redirected)
			}
		})
	}
}

func TestDefaultRoute(t *testing.T) {
	if got := DefaultRoute(models.RoleAdmin); got != RouteAnalytics {
		t.Errorf("expected analytics for admin, got %s", got)
	}
	if got := DefaultRoute(models.RoleUser); got != RouteFeed {
		t.Errorf("expected feed for user, got %s", got)
	}
}
