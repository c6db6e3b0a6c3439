package cli

import (
	"context"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/client/view"
	"github.com/credkarma/credkarma/internal/models"
)

func init() {
	rootCmd.AddCommand(karmaCmd)
}

var karmaCmd = &cobra.Command{
	Use:   "karma",
	Short: "Show the karma score card and leaderboard (admin)",
	RunE:  runKarma,
}

func runKarma(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteKarma)
	if decision.Route != guard.RouteKarma {
		if decision.Route == guard.RouteFeed && decision.Redirected {
			a.orch.Refresh(cmd.Context())
			return a.renderRoute(cmd.Context(), guard.RouteFeed, 1)
		}
		return nil
	}

	a.orch.Refresh(cmd.Context())
	return a.renderKarma(cmd.Context())
}

// renderKarma draws the karma view. Its two extra fetches (summary and
// leaderboard) run concurrently, like the view has always done; either may
// fail independently and the view renders what it got.
func (a *app) renderKarma(ctx context.Context) error {
	var (
		summary     models.BehaviorSummary
		leaderboard []models.LeaderboardEntry
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		if summary, err = a.api.Behaviors.Summary(ctx); err != nil {
			a.log.Error("failed to fetch behavior summary", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if leaderboard, err = a.api.Users.Leaderboard(ctx); err != nil {
			a.log.Error("failed to fetch leaderboard", zap.Error(err))
		}
	}()
	wg.Wait()

	user := models.User{}
	if state := a.orch.State(); state.User != nil {
		user = *state.User
	}
	view.Karma(a.out, user, summary, leaderboard)
	return nil
}
