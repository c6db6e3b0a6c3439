package http

import (
	"context"
	"net/http"

	"github.com/credkarma/credkarma/internal/middleware"
	"github.com/credkarma/credkarma/internal/models"
)

// ProfileService fetches the current user's profile.
type ProfileService interface {
	Me(ctx context.Context, userID string) (models.User, error)
}

// LeaderboardService serves the ranked user list.
type LeaderboardService interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// UsersHandler handles the /api/users endpoints.
type UsersHandler struct {
	Profile     ProfileService
	Leaderboard LeaderboardService
}

// Me handles GET /api/users/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	user, err := h.Profile.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetLeaderboard handles GET /api/users/leaderboard. The list comes back
// ordered by karma, highest first.
func (h *UsersHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Leaderboard.Leaderboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
