// Package models defines the core data structures shared by the CREDKarma
// client and the development backend: users, behaviors, rewards, and the
// analytics snapshot.
package models

import "time"

// UserRole identifies the access level of a user account.
type UserRole string

const (
	// RoleUser is a regular account that logs behaviors and unlocks rewards.
	RoleUser UserRole = "user"
	// RoleAdmin additionally sees the analytics dashboard and karma views.
	RoleAdmin UserRole = "admin"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// User is the profile of an authenticated account as returned by the backend.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// Email is the address provided at registration.
	Email string `json:"email"`
	// KarmaScore is the integer reputation metric owned by the backend.
	KarmaScore int `json:"karmaScore"`
	// Role is either "user" or "admin"; never edited client-side.
	Role UserRole `json:"role"`
}

// LoginCredentials is the payload for POST /auth/login.
// Username also accepts an email address.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterData is the payload for POST /auth/register.
type RegisterData struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// AuthResponse is returned by both login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// BehaviorType is the closed set of credit-related events that can be logged.
type BehaviorType string

const (
	PaymentOnTime         BehaviorType = "payment_on_time"
	PaymentLate           BehaviorType = "payment_late"
	CreditUtilizationLow  BehaviorType = "credit_utilization_low"
	CreditUtilizationHigh BehaviorType = "credit_utilization_high"
	NewCreditAccount      BehaviorType = "new_credit_account"
	CreditCheck           BehaviorType = "credit_check"
)

// BehaviorTypes lists every behavior type in display order.
func BehaviorTypes() []BehaviorType {
	return []BehaviorType{
		PaymentOnTime,
		PaymentLate,
		CreditUtilizationLow,
		CreditUtilizationHigh,
		NewCreditAccount,
		CreditCheck,
	}
}

// Valid reports whether t is one of the known behavior types.
func (t BehaviorType) Valid() bool {
	switch t {
	case PaymentOnTime, PaymentLate, CreditUtilizationLow,
		CreditUtilizationHigh, NewCreditAccount, CreditCheck:
		return true
	}
	return false
}

// Label returns the human-readable name for the behavior type.
func (t BehaviorType) Label() string {
	switch t {
	case PaymentOnTime:
		return "On-time Payment"
	case PaymentLate:
		return "Late Payment"
	case CreditUtilizationLow:
		return "Low Credit Utilization"
	case CreditUtilizationHigh:
		return "High Credit Utilization"
	case NewCreditAccount:
		return "New Credit Account"
	case CreditCheck:
		return "Credit Check"
	}
	return string(t)
}

// Points returns the signed karma impact of the behavior type.
func (t BehaviorType) Points() int {
	switch t {
	case PaymentOnTime:
		return 10
	case PaymentLate:
		return -15
	case CreditUtilizationLow:
		return 5
	case CreditUtilizationHigh:
		return -5
	case NewCreditAccount:
		return 3
	case CreditCheck:
		return -2
	}
	return 0
}

// Behavior is a discrete logged credit event. Immutable once created.
type Behavior struct {
	ID          string         `json:"id"`
	Type        BehaviorType   `json:"type"`
	Description string         `json:"description"`
	KarmaPoints int            `json:"karmaPoints"`
	Date        time.Time      `json:"date"`
	IsRead      bool           `json:"isRead"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewBehavior is the user-submitted payload for POST /behaviors.
// Date is optional; the backend defaults it to the submission time.
type NewBehavior struct {
	Type        BehaviorType   `json:"type"`
	Description string         `json:"description"`
	Date        *time.Time     `json:"date,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// BehaviorList is the response of GET /behaviors.
type BehaviorList struct {
	Behaviors   []Behavior `json:"behaviors"`
	UnreadCount int        `json:"unreadCount"`
}

// BehaviorSummaryItem aggregates one behavior type for the current user.
type BehaviorSummaryItem struct {
	Type       BehaviorType `json:"type"`
	Count      int          `json:"count"`
	TotalKarma int          `json:"totalKarma"`
}

// BehaviorSummary is the response of GET /behaviors/summary.
type BehaviorSummary struct {
	CurrentKarma    int                   `json:"currentKarma"`
	BehaviorSummary []BehaviorSummaryItem `json:"behaviorSummary"`
}

// RewardCategory classifies a reward in the catalog.
type RewardCategory string

const (
	CategoryCashback RewardCategory = "cashback"
	CategoryDiscount RewardCategory = "discount"
	CategoryFeature  RewardCategory = "feature"
	CategoryBadge    RewardCategory = "badge"
)

// Valid reports whether c is one of the known categories.
func (c RewardCategory) Valid() bool {
	switch c {
	case CategoryCashback, CategoryDiscount, CategoryFeature, CategoryBadge:
		return true
	}
	return false
}

// Icon returns the display glyph for the category.
func (c RewardCategory) Icon() string {
	switch c {
	case CategoryCashback:
		return "💰"
	case CategoryDiscount:
		return "🏷️"
	case CategoryFeature:
		return "⭐"
	case CategoryBadge:
		return "🏆"
	}
	return "🎁"
}

// Reward is a catalog item unlockable at a karma threshold.
type Reward struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	KarmaRequired int            `json:"karmaRequired"`
	Category      RewardCategory `json:"category"`
}

// RewardWithStatus decorates a reward with the caller's eligibility,
// computed by the backend and trusted as-is by the client.
type RewardWithStatus struct {
	Reward
	IsUnlocked bool `json:"isUnlocked"`
	CanUnlock  bool `json:"canUnlock"`
}

// UnlockResponse is returned by POST /rewards/:id/unlock.
type UnlockResponse struct {
	Message string           `json:"message"`
	Reward  RewardWithStatus `json:"reward"`
}

// MarkReadResponse is returned by PUT /behaviors/:id/read.
type MarkReadResponse struct {
	Behavior    Behavior `json:"behavior"`
	UnreadCount int      `json:"unreadCount"`
}

// LeaderboardEntry is one row of GET /users/leaderboard, ordered by the
// backend (descending karma).
type LeaderboardEntry struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	KarmaScore int    `json:"karmaScore"`
}

// AnalyticsSummary holds the headline counters of the admin dashboard.
type AnalyticsSummary struct {
	TotalUsers     int     `json:"totalUsers"`
	AvgKarmaScore  float64 `json:"avgKarmaScore"`
	TotalBehaviors int     `json:"totalBehaviors"`
	ActiveUsers    int     `json:"activeUsers"`
}

// AnalyticsUser is one leaderboard row of the admin dashboard.
type AnalyticsUser struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	KarmaScore int       `json:"karmaScore"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BehaviorStat aggregates one behavior type across all users.
type BehaviorStat struct {
	Type       BehaviorType `json:"type"`
	Count      int          `json:"count"`
	TotalKarma int          `json:"totalKarma"`
}

// KarmaBucket is one band of the karma distribution histogram.
type KarmaBucket struct {
	Range      string  `json:"range"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ActivityPoint is one day of the recent-activity series.
type ActivityPoint struct {
	Date        string `json:"date"`
	Count       int    `json:"count"`
	KarmaChange int    `json:"karmaChange"`
}

// TopPerformer is one row of the recent top-performers list.
type TopPerformer struct {
	Username      string `json:"username"`
	KarmaGained   int    `json:"karmaGained"`
	BehaviorCount int    `json:"behaviorCount"`
}

// DashboardAnalytics is the read-only aggregate snapshot of
// GET /dashboard/analytics. Fetched wholesale, never mutated locally.
type DashboardAnalytics struct {
	Summary           AnalyticsSummary `json:"summary"`
	Leaderboard       []AnalyticsUser  `json:"leaderboard"`
	BehaviorStats     []BehaviorStat   `json:"behaviorStats"`
	KarmaDistribution []KarmaBucket    `json:"karmaDistribution"`
	RecentActivity    []ActivityPoint  `json:"recentActivity"`
	TopPerformers     []TopPerformer   `json:"topPerformers"`
}

// FieldError describes a single rejected field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON error payload carried by every non-2xx response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
