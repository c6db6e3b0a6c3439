package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/validate"
)

func init() {
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(readAllCmd)

	feedCmd.Flags().IntP("page", "p", 1, "feed page to show")
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the behavior feed",
	RunE:  runFeed,
}

func runFeed(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteFeed)
	if decision.Route != guard.RouteFeed {
		return nil
	}

	page, _ := cmd.Flags().GetInt("page")
	a.orch.Refresh(cmd.Context())
	return a.renderRoute(cmd.Context(), guard.RouteFeed, page)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new behavior",
	Long: `Log a credit-related behavior. The karma impact is fixed per type and
assigned by the backend; your score and reward eligibility refresh
immediately after the behavior is recorded.`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteFeed)
	if decision.Route != guard.RouteFeed {
		return nil
	}

	input, err := a.prompter().behavior()
	if err != nil {
		return err
	}
	if err := validate.Behavior(input, time.Now()); err != nil {
		return err
	}

	created, err := a.api.Behaviors.Create(cmd.Context(), input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Behavior added: %s (%+d karma)\n", created.Type.Label(), created.KarmaPoints)

	// One full refresh keeps score, feed, and reward eligibility consistent.
	a.orch.Refresh(cmd.Context())
	return a.renderRoute(cmd.Context(), guard.RouteFeed, 1)
}

var readCmd = &cobra.Command{
	Use:   "read BEHAVIOR_ID",
	Short: "Mark a behavior as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		decision := a.resolve(guard.RouteFeed)
		if decision.Route != guard.RouteFeed {
			return nil
		}

		resp, err := a.api.Behaviors.MarkRead(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Marked as read. %d unread behaviors left.\n", resp.UnreadCount)
		return nil
	},
}

var readAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every behavior as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		decision := a.resolve(guard.RouteFeed)
		if decision.Route != guard.RouteFeed {
			return nil
		}

		if err := a.api.Behaviors.MarkAllRead(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "All behaviors marked as read.")
		return nil
	},
}
