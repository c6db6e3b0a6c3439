package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/credkarma/credkarma/internal/middleware"
	"github.com/credkarma/credkarma/internal/models"
	"github.com/credkarma/credkarma/internal/validate"
)

// BehaviorService defines the behavior operations required by the HTTP
// handlers.
type BehaviorService interface {
	Create(ctx context.Context, userID string, input models.NewBehavior) (models.Behavior, error)
	List(ctx context.Context, userID string) (models.BehaviorList, error)
	MarkRead(ctx context.Context, userID, behaviorID string) (models.MarkReadResponse, error)
	MarkAllRead(ctx context.Context, userID string) error
	Summary(ctx context.Context, userID string) (models.BehaviorSummary, error)
}

// BehaviorsHandler handles the /api/behaviors endpoints.
type BehaviorsHandler struct {
	// BehaviorService performs the underlying behavior operations.
	BehaviorService BehaviorService
}

// List handles GET /api/behaviors.
func (h *BehaviorsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	list, err := h.BehaviorService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list.Behaviors == nil {
		list.Behaviors = []models.Behavior{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/behaviors. The payload is validated and the
// behavior type determines the karma points.
func (h *BehaviorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.NewBehavior
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := validate.Behavior(input, time.Now()); err != nil {
		var verr *validate.Errors
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.GetUserIDFromContext(r.Context())
	b, err := h.BehaviorService.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// Summary handles GET /api/behaviors/summary.
func (h *BehaviorsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	sum, err := h.BehaviorService.Summary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sum.BehaviorSummary == nil {
		sum.BehaviorSummary = []models.BehaviorSummaryItem{}
	}
	writeJSON(w, http.StatusOK, sum)
}

// MarkRead handles PUT /api/behaviors/{id}/read.
func (h *BehaviorsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	behaviorID := chi.URLParam(r, "id")
	resp, err := h.BehaviorService.MarkRead(r.Context(), userID, behaviorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// MarkAllRead handles PUT /api/behaviors/read-all.
func (h *BehaviorsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if err := h.BehaviorService.MarkAllRead(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
