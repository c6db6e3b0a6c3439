package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/credkarma/credkarma/internal/models"
)

// Analytics renders the admin dashboard snapshot.
func Analytics(w io.Writer, data models.DashboardAnalytics) {
	fmt.Fprintln(w, "Analytics Dashboard")
	fmt.Fprintf(w, "  Total users:     %d\n", data.Summary.TotalUsers)
	fmt.Fprintf(w, "  Average karma:   %.1f\n", data.Summary.AvgKarmaScore)
	fmt.Fprintf(w, "  Total behaviors: %d\n", data.Summary.TotalBehaviors)
	fmt.Fprintf(w, "  Active users:    %d\n", data.Summary.ActiveUsers)

	if len(data.Leaderboard) > 0 {
		fmt.Fprintln(w, "\nLeaderboard")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "USERNAME\tEMAIL\tKARMA\tJOINED\t")
		for _, u := range data.Leaderboard {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t\n", u.Username, u.Email, u.KarmaScore, u.CreatedAt.Format("2006-01-02"))
		}
		tw.Flush()
	}

	if len(data.BehaviorStats) > 0 {
		fmt.Fprintln(w, "\nBehavior Stats")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, s := range data.BehaviorStats {
			fmt.Fprintf(tw, "%s\t%d events\t%+d karma\t\n", s.Type.Label(), s.Count, s.TotalKarma)
		}
		tw.Flush()
	}

	if len(data.KarmaDistribution) > 0 {
		fmt.Fprintln(w, "\nKarma Distribution")
		for _, b := range data.KarmaDistribution {
			fmt.Fprintf(w, "  %-8s %4d users (%.0f%%)\n", b.Range, b.Count, b.Percentage)
		}
	}

	if len(data.RecentActivity) > 0 {
		fmt.Fprintln(w, "\nRecent Activity")
		for _, p := range data.RecentActivity {
			fmt.Fprintf(w, "  %s  %3d behaviors  %+d karma\n", p.Date, p.Count, p.KarmaChange)
		}
	}

	if len(data.TopPerformers) > 0 {
		fmt.Fprintln(w, "\nTop Performers (last 30 days)")
		for i, p := range data.TopPerformers {
			fmt.Fprintf(w, "  #%d %-20s +%d karma over %d behaviors\n", i+1, p.Username, p.KarmaGained, p.BehaviorCount)
		}
	}
}
