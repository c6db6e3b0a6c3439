package http

import (
	"context"
	"net/http"

	"github.com/credkarma/credkarma/internal/middleware"
	"github.com/credkarma/credkarma/internal/models"
)

// DashboardService assembles the admin analytics snapshot.
type DashboardService interface {
	Analytics(ctx context.Context, userID string) (models.DashboardAnalytics, error)
}

// DashboardHandler handles the admin analytics endpoint.
type DashboardHandler struct {
	// DashboardService performs the underlying aggregation.
	DashboardService DashboardService
}

// Analytics handles GET /api/dashboard/analytics. Non-admin callers get 403.
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	snap, err := h.DashboardService.Analytics(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
