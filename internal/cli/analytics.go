package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/client/view"
)

func init() {
	rootCmd.AddCommand(analyticsCmd)
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show the analytics dashboard (admin)",
	RunE:  runAnalytics,
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	decision := a.resolve(guard.RouteAnalytics)
	if decision.Route != guard.RouteAnalytics {
		if decision.Route == guard.RouteFeed && decision.Redirected {
			a.orch.Refresh(cmd.Context())
			return a.renderRoute(cmd.Context(), guard.RouteFeed, 1)
		}
		return nil
	}

	return a.renderAnalytics(cmd.Context())
}

// renderAnalytics fetches the snapshot wholesale and draws it.
func (a *app) renderAnalytics(ctx context.Context) error {
	data, err := a.api.Dashboard.Analytics(ctx)
	if err != nil {
		return err
	}
	view.Analytics(a.out, data)
	return nil
}
