package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/credkarma/credkarma/internal/models"
)

// AuthAPI covers the /auth endpoints.
type AuthAPI struct{ c *Client }

// Login exchanges credentials for a token and profile.
func (a *AuthAPI) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := a.c.do(ctx, http.MethodPost, "/auth/login", creds, &out)
	return out, err
}

// Register creates an account and signs it in.
func (a *AuthAPI) Register(ctx context.Context, data models.RegisterData) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := a.c.do(ctx, http.MethodPost, "/auth/register", data, &out)
	return out, err
}

// Logout revokes the current token on the server.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// UsersAPI covers the /users endpoints.
type UsersAPI struct{ c *Client }

// Me fetches the current user's profile.
func (u *UsersAPI) Me(ctx context.Context) (models.User, error) {
	var out models.User
	err := u.c.do(ctx, http.MethodGet, "/users/me", nil, &out)
	return out, err
}

// Leaderboard fetches the ranked user list, ordered by the server.
func (u *UsersAPI) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var out []models.LeaderboardEntry
	err := u.c.do(ctx, http.MethodGet, "/users/leaderboard", nil, &out)
	return out, err
}

// BehaviorsAPI covers the /behaviors endpoints.
type BehaviorsAPI struct{ c *Client }

// List fetches every behavior of the current user, newest first.
func (b *BehaviorsAPI) List(ctx context.Context) (models.BehaviorList, error) {
	var out models.BehaviorList
	err := b.c.do(ctx, http.MethodGet, "/behaviors", nil, &out)
	return out, err
}

// Create logs a new behavior.
func (b *BehaviorsAPI) Create(ctx context.Context, input models.NewBehavior) (models.Behavior, error) {
	var out models.Behavior
	err := b.c.do(ctx, http.MethodPost, "/behaviors", input, &out)
	return out, err
}

// Summary fetches the per-type aggregation for the current user.
func (b *BehaviorsAPI) Summary(ctx context.Context) (models.BehaviorSummary, error) {
	var out models.BehaviorSummary
	err := b.c.do(ctx, http.MethodGet, "/behaviors/summary", nil, &out)
	return out, err
}

// MarkRead marks one behavior as read.
func (b *BehaviorsAPI) MarkRead(ctx context.Context, id string) (models.MarkReadResponse, error) {
	var out models.MarkReadResponse
	err := b.c.do(ctx, http.MethodPut, "/behaviors/"+url.PathEscape(id)+"/read", nil, &out)
	return out, err
}

// MarkAllRead marks every unread behavior as read.
func (b *BehaviorsAPI) MarkAllRead(ctx context.Context) error {
	return b.c.do(ctx, http.MethodPut, "/behaviors/read-all", nil, nil)
}

// RewardsAPI covers the /rewards endpoints.
type RewardsAPI struct{ c *Client }

// List fetches the reward catalog with the caller's unlock status.
func (r *RewardsAPI) List(ctx context.Context) ([]models.RewardWithStatus, error) {
	var out []models.RewardWithStatus
	err := r.c.do(ctx, http.MethodGet, "/rewards", nil, &out)
	return out, err
}

// Unlock claims a reward.
func (r *RewardsAPI) Unlock(ctx context.Context, id string) (models.UnlockResponse, error) {
	var out models.UnlockResponse
	err := r.c.do(ctx, http.MethodPost, "/rewards/"+url.PathEscape(id)+"/unlock", nil, &out)
	return out, err
}

// Seed populates the sample reward catalog. Development convenience.
func (r *RewardsAPI) Seed(ctx context.Context) error {
	return r.c.do(ctx, http.MethodPost, "/rewards/seed", nil, nil)
}

// DashboardAPI covers the admin analytics endpoint.
type DashboardAPI struct{ c *Client }

// Analytics fetches the aggregate snapshot. Admin only.
func (d *DashboardAPI) Analytics(ctx context.Context) (models.DashboardAnalytics, error) {
	var out models.DashboardAnalytics
	err := d.c.do(ctx, http.MethodGet, "/dashboard/analytics", nil, &out)
	return out, err
}
