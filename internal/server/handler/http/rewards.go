package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/credkarma/credkarma/internal/middleware"
	"github.com/credkarma/credkarma/internal/models"
)

// RewardService defines the reward operations required by the HTTP handlers.
type RewardService interface {
	ListForUser(ctx context.Context, userID string) ([]models.RewardWithStatus, error)
	Unlock(ctx context.Context, userID, rewardID string) (models.UnlockResponse, error)
	Seed(ctx context.Context) error
}

// RewardsHandler handles the /api/rewards endpoints.
type RewardsHandler struct {
	// RewardService performs the underlying reward operations.
	RewardService RewardService
}

// List handles GET /api/rewards. Each entry carries the caller's unlock
// eligibility.
func (h *RewardsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	rewards, err := h.RewardService.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if rewards == nil {
		rewards = []models.RewardWithStatus{}
	}
	writeJSON(w, http.StatusOK, rewards)
}

// Unlock handles POST /api/rewards/{id}/unlock.
func (h *RewardsHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	rewardID := chi.URLParam(r, "id")
	resp, err := h.RewardService.Unlock(r.Context(), userID, rewardID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Seed handles POST /api/rewards/seed. Installs the sample catalog,
// skipping entries that already exist.
func (h *RewardsHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.RewardService.Seed(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
