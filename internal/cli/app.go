package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/credkarma/credkarma/internal/client/api"
	"github.com/credkarma/credkarma/internal/client/config"
	"github.com/credkarma/credkarma/internal/client/dashboard"
	"github.com/credkarma/credkarma/internal/client/guard"
	"github.com/credkarma/credkarma/internal/client/session"
	"github.com/credkarma/credkarma/internal/client/view"
	"github.com/credkarma/credkarma/internal/logger"
	"github.com/credkarma/credkarma/internal/models"
)

// app bundles everything a command needs: config, session store, API client,
// orchestrator, and output streams.
type app struct {
	cfg      config.Config
	sessions *session.Store
	api      *api.Client
	orch     *dashboard.Orchestrator
	log      *zap.Logger
	out      io.Writer
	in       io.Reader
}

// newApp wires the client from the persistent flags. The orchestrator is
// created lazily-enough here because every authenticated command needs it.
func newApp(cmd *cobra.Command) (*app, error) {
	dir := flagCfgDir
	if dir == "" {
		var err error
		dir, err = config.Dir()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(dir, flagURL)
	if err != nil {
		return nil, err
	}

	log := logger.New()
	if err := log.Init("warn"); err != nil {
		return nil, err
	}

	sessions := session.NewStore(dir)
	client := api.New(cfg.BaseURL, sessions)

	return &app{
		cfg:      cfg,
		sessions: sessions,
		api:      client,
		orch:     dashboard.New(dashboard.APIFetcher{API: client}, log.Log),
		log:      log.Log,
		out:      cmd.OutOrStdout(),
		in:       cmd.InOrStdin(),
	}, nil
}

// resolve runs the route guard for the requested view and prints a note when
// the navigation is redirected.
func (a *app) resolve(route guard.Route) guard.Decision {
	decision := guard.Resolve(a.sessions.Get(), route)
	if decision.Redirected {
		switch decision.Route {
		case guard.RouteLogin:
			fmt.Fprintln(a.out, "You are not signed in. Run 'credkarma login' first.")
		case guard.RouteFeed:
			fmt.Fprintln(a.out, "That view is for administrators; showing the behavior feed instead.")
		}
	}
	return decision
}

// renderRoute draws the view behind an authenticated route using the
// orchestrator's current state. feedPage applies to the feed view only.
func (a *app) renderRoute(ctx context.Context, route guard.Route, feedPage int) error {
	state := a.orch.State()
	switch route {
	case guard.RouteFeed:
		view.Feed(a.out, state.Behaviors, feedPage)
	case guard.RouteRewards:
		user := models.User{}
		if state.User != nil {
			user = *state.User
		}
		view.Rewards(a.out, state.Rewards, user)
	case guard.RouteKarma:
		return a.renderKarma(ctx)
	case guard.RouteAnalytics:
		return a.renderAnalytics(ctx)
	}
	return nil
}
