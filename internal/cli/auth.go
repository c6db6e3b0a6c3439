package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/validate"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	decision := a.resolve(guard.RouteLogin)
	if decision.Redirected {
		// Already authenticated; the guard sends login to the default view.
		fmt.Fprintf(a.out, "Already signed in as %s.\n", a.sessions.Get().User.Username)
		return nil
	}

	creds := a.prompter().credentials()
	if err := validate.Login(creds); err != nil {
		return err
	}

	resp, err := a.api.Auth.Login(cmd.Context(), creds)
	if err != nil {
		return err
	}
	if err := a.sessions.Set(resp.Token, resp.User); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	target := guard.DefaultRoute(resp.User.Role)
	fmt.Fprintf(a.out, "Welcome back, %s! Karma: %d\n", resp.User.Username, resp.User.KarmaScore)
	fmt.Fprintf(a.out, "Default view: %s\n", commandFor(target))
	return nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	decision := a.resolve(guard.RouteRegister)
	if decision.Redirected {
		fmt.Fprintf(a.out, "Already signed in as %s. Run 'credkarma logout' first.\n", a.sessions.Get().User.Username)
		return nil
	}

	data := a.prompter().registration()
	if err := validate.Register(data); err != nil {
		return err
	}

	resp, err := a.api.Auth.Register(cmd.Context(), data)
	if err != nil {
		return err
	}
	if err := a.sessions.Set(resp.Token, resp.User); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	target := guard.DefaultRoute(resp.User.Role)
	fmt.Fprintf(a.out, "Welcome to CREDKarma, %s!\n", resp.User.Username)
	fmt.Fprintf(a.out, "Default view: %s\n", commandFor(target))
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the token and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.sessions.Get() != nil {
			// Best effort; an unreachable server must not keep the
			// session pinned locally, and the token expires anyway.
			if err := a.api.Auth.Logout(cmd.Context()); err != nil {
				a.log.Warn("failed to revoke token", zap.Error(err))
			}
		}
		if err := a.sessions.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		sess := a.sessions.Get()
		if sess == nil {
			fmt.Fprintln(a.out, "Not signed in.")
			return nil
		}
		fmt.Fprintf(a.out, "%s <%s> (%s), karma %d\n",
			sess.User.Username, sess.User.Email, sess.User.Role, sess.User.KarmaScore)
		return nil
	},
}

// commandFor names the subcommand that opens the given route.
func commandFor(route guard.Route) string {
	switch route {
	case guard.RouteAnalytics:
		return "credkarma analytics"
	case guard.RouteKarma:
		return "credkarma karma"
	case guard.RouteRewards:
		return "credkarma rewards"
	default:
		return "credkarma feed"
	}
}
