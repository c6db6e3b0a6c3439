// Package guard decides, per navigation, whether a view may be shown for
// the current session and role. Decisions are synchronous against whatever
// session is persisted; there is no intermediate loading state.
package guard

import (
	"github.com/credkarma/credkarma/internal/client/session"
	"github.com/credkarma/credkarma/internal/models"
)

// Route identifies a navigable view of the client.
type Route string

const (
	// RouteRoot is the bare entry point; it always redirects somewhere.
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteRegister  Route = "/register"
	RouteFeed      Route = "/routes/feed"
	RouteKarma     Route = "/routes/karma"
	RouteRewards   Route = "/routes/rewards"
	RouteAnalytics Route = "/routes/dashboard"
)

// Decision is the outcome of resolving a navigation: either the requested
// route renders, or the caller must navigate to Route instead.
type Decision struct {
	Route      Route
	Redirected bool
}

func render(r Route) Decision   { return Decision{Route: r} }
func redirect(r Route) Decision { return Decision{Route: r, Redirected: true} }

// DefaultRoute is the view an authenticated user lands on: admins get the
// analytics dashboard, everyone else the behavior feed.
func DefaultRoute(role models.UserRole) Route {
	if role == models.RoleAdmin {
		return RouteAnalytics
	}
	return RouteFeed
}

// Resolve gates a navigation. With no session only the login and register
// views render; everything else redirects to login. With a session the
// unauthenticated views redirect to the role default, and the admin-only
// views (karma, analytics) send non-admins to the feed.
func Resolve(sess *session.Session, route Route) Decision {
	if sess == nil {
		switch route {
		case RouteLogin, RouteRegister:
			return render(route)
		default:
			return redirect(RouteLogin)
		}
	}

	role := sess.User.Role
	switch route {
	case RouteLogin, RouteRegister, RouteRoot:
		return redirect(DefaultRoute(role))
	case RouteKarma, RouteAnalytics:
		if role != models.RoleAdmin {
			return redirect(RouteFeed)
		}
		return render(route)
	default:
		return render(route)
	}
}
