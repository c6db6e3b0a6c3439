package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/validate"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard. The profile, behavior feed, and reward
catalog load concurrently on entry; views are navigated by name and every
mutation refreshes the whole state.`,
	RunE: runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	decision := a.resolve(guard.RouteRoot)
	if decision.Route == guard.RouteLogin {
		return nil
	}

	ctx := cmd.Context()
	fmt.Fprintln(a.out, "Loading...")
	a.orch.Refresh(ctx)

	current := guard.RouteRoot
	if target, ok := a.orch.InitialRoute(current); ok {
		current = target
	} else {
		// Profile fetch failed; fall back to the persisted role.
		current = decision.Route
	}
	if err := a.renderRoute(ctx, current, 1); err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "credkarma> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			fmt.Fprintln(a.out, "Commands: feed [page], karma, rewards, analytics, add, unlock <id>, read <id>, read-all, refresh, whoami, help, exit")
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye")
			return nil
		case "refresh":
			a.orch.Refresh(ctx)
			if err := a.renderRoute(ctx, current, 1); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
			}
		case "whoami":
			if state := a.orch.State(); state.User != nil {
				fmt.Fprintf(a.out, "%s (%s), karma %d\n", state.User.Username, state.User.Role, state.User.KarmaScore)
			}
		case "feed", "karma", "rewards", "analytics":
			resolved := a.resolve(shellRoute(fields[0]))
			current = resolved.Route
			page := 1
			if fields[0] == "feed" && len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					page = n
				}
			}
			if err := a.renderRoute(ctx, current, page); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
			}
		case "add":
			if err := a.shellAdd(ctx, scanner); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
			} else {
				current = guard.RouteFeed
			}
		case "unlock":
			if len(fields) < 2 {
				fmt.Fprintln(a.out, "Usage: unlock <reward-id>")
				continue
			}
			if err := a.shellUnlock(ctx, fields[1]); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
			} else {
				current = guard.RouteRewards
			}
		case "read":
			if len(fields) < 2 {
				fmt.Fprintln(a.out, "Usage: read <behavior-id>")
				continue
			}
			resp, err := a.api.Behaviors.MarkRead(ctx, fields[1])
			if err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(a.out, "Marked as read. %d unread left.\n", resp.UnreadCount)
			a.orch.Refresh(ctx)
		case "read-all":
			if err := a.api.Behaviors.MarkAllRead(ctx); err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(a.out, "All behaviors marked as read.")
			a.orch.Refresh(ctx)
		default:
			fmt.Fprintln(a.out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
	return nil
}

func shellRoute(name string) guard.Route {
	switch name {
	case "karma":
		return guard.RouteKarma
	case "rewards":
		return guard.RouteRewards
	case "analytics":
		return guard.RouteAnalytics
	default:
		return guard.RouteFeed
	}
}

// shellAdd runs the add-behavior form inside the shell, reusing the shared
// scanner so the prompt does not fight the command loop over stdin.
func (a *app) shellAdd(ctx context.Context, scanner *bufio.Scanner) error {
	p := &prompter{scanner: scanner, app: a}
	input, err := p.behavior()
	if err != nil {
		return err
	}
	if err := validate.Behavior(input, time.Now()); err != nil {
		return err
	}

	created, err := a.api.Behaviors.Create(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Behavior added: %s (%+d karma)\n", created.Type.Label(), created.KarmaPoints)

	a.orch.Refresh(ctx)
	return a.renderRoute(ctx, guard.RouteFeed, 1)
}

// shellUnlock mirrors the unlock command against the in-memory state.
// A reward the backend has not marked unlockable never produces a call.
func (a *app) shellUnlock(ctx context.Context, id string) error {
	state := a.orch.State()
	for _, r := range state.Rewards {
		if r.ID != id {
			continue
		}
		if r.IsUnlocked {
			fmt.Fprintf(a.out, "%q is already unlocked.\n", r.Title)
			return nil
		}
		if !r.CanUnlock {
			fmt.Fprintf(a.out, "Not enough karma to unlock %q yet.\n", r.Title)
			return nil
		}
		resp, err := a.api.Rewards.Unlock(ctx, r.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, resp.Message)
		a.orch.Refresh(ctx)
		return a.renderRoute(ctx, guard.RouteRewards, 0)
	}
	return fmt.Errorf("no reward with id %q", id)
}
