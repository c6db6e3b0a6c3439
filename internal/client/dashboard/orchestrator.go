// Package dashboard loads and holds the aggregate state behind the
// authenticated area: profile, behavior feed, and reward catalog. It is the
// client's only consistency mechanism — after any mutation the whole state
// is refetched, with no incremental patching.
package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/client/api"
	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/models"
)

// Fetcher is the slice of the API the orchestrator depends on.
type Fetcher interface {
	// Me fetches the current user's profile.
	Me(ctx context.Context) (models.User, error)
	// Behaviors fetches the full behavior feed with the unread count.
	Behaviors(ctx context.Context) (models.BehaviorList, error)
	// Rewards fetches the reward catalog with unlock status.
	Rewards(ctx context.Context) ([]models.RewardWithStatus, error)
}

// APIFetcher adapts *api.Client to the Fetcher interface.
type APIFetcher struct {
	API *api.Client
}

func (f APIFetcher) Me(ctx context.Context) (models.User, error) {
	return f.API.Users.Me(ctx)
}

func (f APIFetcher) Behaviors(ctx context.Context) (models.BehaviorList, error) {
	return f.API.Behaviors.List(ctx)
}

func (f APIFetcher) Rewards(ctx context.Context) ([]models.RewardWithStatus, error) {
	return f.API.Rewards.List(ctx)
}

// State is a snapshot of the orchestrator's data. User is nil until the
// profile fetch has succeeded at least once.
type State struct {
	User        *models.User
	Behaviors   []models.Behavior
	UnreadCount int
	Rewards     []models.RewardWithStatus
}

// Orchestrator issues the three dashboard fetches concurrently and keeps the
// latest results. Every refresh is tagged with a generation; a refresh that
// finishes after a newer one has started discards its results, so stale
// responses can never overwrite fresher data.
type Orchestrator struct {
	fetcher Fetcher
	log     *zap.Logger

	mu     sync.Mutex
	gen    uint64
	state  State
	routed bool
}

// New creates an orchestrator. log must not be nil; pass zap.NewNop() to
// silence it.
func New(fetcher Fetcher, log *zap.Logger) *Orchestrator {
	return &Orchestrator{fetcher: fetcher, log: log}
}

// Refresh runs the three fetches concurrently, waits for all of them to
// settle, applies whatever succeeded, and returns the resulting snapshot.
// A failed fetch is logged and leaves its slice of the state untouched; the
// caller always gets out of its loading state.
func (o *Orchestrator) Refresh(ctx context.Context) State {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	o.mu.Unlock()

	var (
		user    models.User
		list    models.BehaviorList
		rewards []models.RewardWithStatus

		userErr, listErr, rewardsErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		user, userErr = o.fetcher.Me(ctx)
	}()
	go func() {
		defer wg.Done()
		list, listErr = o.fetcher.Behaviors(ctx)
	}()
	go func() {
		defer wg.Done()
		rewards, rewardsErr = o.fetcher.Rewards(ctx)
	}()
	wg.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		o.log.Debug("discarding stale refresh", zap.Uint64("gen", gen), zap.Uint64("current", o.gen))
		return o.state
	}

	if userErr != nil {
		o.log.Error("failed to fetch profile", zap.Error(userErr))
	} else {
		u := user
		o.state.User = &u
	}
	if listErr != nil {
		o.log.Error("failed to fetch behaviors", zap.Error(listErr))
	} else {
		o.state.Behaviors = list.Behaviors
		o.state.UnreadCount = list.UnreadCount
	}
	if rewardsErr != nil {
		o.log.Error("failed to fetch rewards", zap.Error(rewardsErr))
	} else {
		o.state.Rewards = rewards
	}

	return o.state
}

// State returns the latest snapshot without fetching.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// InitialRoute reports where to navigate after the first successful load.
// When the caller sits at the authenticated-area root and the profile is
// known, it returns the role-appropriate default view exactly once.
func (o *Orchestrator) InitialRoute(current guard.Route) (guard.Route, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.routed || o.state.User == nil || current != guard.RouteRoot {
		return current, false
	}
	o.routed = true
	return guard.DefaultRoute(o.state.User.Role), true
}
