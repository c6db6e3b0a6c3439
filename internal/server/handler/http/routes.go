package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the development backend API.
//
// Routes:
//
//	POST /api/auth/register            → authHandler.Register
//	POST /api/auth/login               → authHandler.Login
//	POST /api/auth/logout              → authHandler.Logout (protected)
//	GET  /api/users/me                 → usersHandler.Me (protected)
//	GET  /api/users/leaderboard        → usersHandler.GetLeaderboard (protected)
//	GET  /api/behaviors                → behaviorsHandler.List (protected)
//	POST /api/behaviors                → behaviorsHandler.Create (protected)
//	GET  /api/behaviors/summary        → behaviorsHandler.Summary (protected)
//	PUT  /api/behaviors/{id}/read      → behaviorsHandler.MarkRead (protected)
//	PUT  /api/behaviors/read-all       → behaviorsHandler.MarkAllRead (protected)
//	GET  /api/rewards                  → rewardsHandler.List (protected)
//	POST /api/rewards/{id}/unlock      → rewardsHandler.Unlock (protected)
//	POST /api/rewards/seed             → rewardsHandler.Seed (protected)
//	GET  /api/dashboard/analytics      → dashboardHandler.Analytics (protected, admin)
//	GET  /metrics                      → Prometheus metrics
//	GET  /health                       → liveness probe
//
// Protected routes require an "Authorization: Bearer <token>" header.
func NewRouter(
	authHandler *AuthHandler,
	usersHandler *UsersHandler,
	behaviorsHandler *BehaviorsHandler,
	rewardsHandler *RewardsHandler,
	dashboardHandler *DashboardHandler,
	resolver middleware.TokenResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithMetrics)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected group: requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(resolver))

			r.Post("/auth/logout", authHandler.Logout)

			r.Get("/users/me", usersHandler.Me)
			r.Get("/users/leaderboard", usersHandler.GetLeaderboard)

			r.Get("/behaviors", behaviorsHandler.List)
			r.Post("/behaviors", behaviorsHandler.Create)
			r.Get("/behaviors/summary", behaviorsHandler.Summary)
			r.Put("/behaviors/read-all", behaviorsHandler.MarkAllRead)
			r.Put("/behaviors/{id}/read", behaviorsHandler.MarkRead)

			r.Get("/rewards", rewardsHandler.List)
			r.Post("/rewards/seed", rewardsHandler.Seed)
			r.Post("/rewards/{id}/unlock", rewardsHandler.Unlock)

			r.Get("/dashboard/analytics", dashboardHandler.Analytics)
		})
	})

	return r
}
