package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/credkarma/credkarma/internal/client/guard"
)

func init() {
	rootCmd.AddCommand(rewardsCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(seedCmd)
}

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Browse the reward catalog",
	RunE:  runRewards,
}

func runRewards(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteRewards)
	if decision.Route != guard.RouteRewards {
		return nil
	}

	a.orch.Refresh(cmd.Context())
	return a.renderRoute(cmd.Context(), guard.RouteRewards, 0)
}

var unlockCmd = &cobra.Command{
	Use:   "unlock REWARD_ID",
	Short: "Unlock a reward",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnlock,
}

func runUnlock(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteRewards)
	if decision.Route != guard.RouteRewards {
		return nil
	}

	state := a.orch.Refresh(cmd.Context())

	// The unlock affordance is disabled unless the backend says canUnlock;
	// an ineligible reward never produces a network call.
	for _, r := range state.Rewards {
		if r.ID != args[0] {
			continue
		}
		if r.IsUnlocked {
			fmt.Fprintf(a.out, "%q is already unlocked.\n", r.Title)
			return nil
		}
		if !r.CanUnlock {
			shortfall := r.KarmaRequired
			if state.User != nil {
				shortfall -= state.User.KarmaScore
			}
			fmt.Fprintf(a.out, "You need %d more karma to unlock %q.\n", shortfall, r.Title)
			return nil
		}

		resp, err := a.api.Rewards.Unlock(cmd.Context(), r.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s\n", resp.Message)

		a.orch.Refresh(cmd.Context())
		return a.renderRoute(cmd.Context(), guard.RouteRewards, 0)
	}

	return fmt.Errorf("no reward with id %q", args[0])
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the sample reward catalog (development)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		decision := a.resolve(guard.RouteRewards)
		if decision.Route != guard.RouteRewards {
			return nil
		}

		if err := a.api.Rewards.Seed(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Sample rewards added.")

		a.orch.Refresh(cmd.Context())
		return a.renderRoute(cmd.Context(), guard.RouteRewards, 0)
	},
}
