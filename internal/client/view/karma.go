package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/credkarma/credkarma/internal/karma"
	"github.com/credkarma/credkarma/internal/models"
)

const progressWidth = 30

// Karma renders the karma score card, the per-type summary, and the
// leaderboard. summary may be zero-valued and leaderboard empty when the
// respective fetches failed.
func Karma(w io.Writer, user models.User, summary models.BehaviorSummary, leaderboard []models.LeaderboardEntry) {
	tier := karma.TierOf(user.KarmaScore)

	fmt.Fprintf(w, "Your Credit Karma: %d points (%s)\n", user.KarmaScore, tier.Level)
	if tier.Next != "" {
		fmt.Fprintf(w, "Progress to %s: %s %d points needed\n",
			tier.Next, progressBar(karma.Progress(user.KarmaScore)), tier.PointsNeeded)
	} else {
		fmt.Fprintf(w, "Top tier reached: %s\n", progressBar(1))
	}

	if len(summary.BehaviorSummary) > 0 {
		fmt.Fprintln(w, "\nBehavior Summary")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, item := range summary.BehaviorSummary {
			fmt.Fprintf(tw, "%s\t%d times\t%+d karma\t\n", item.Type.Label(), item.Count, item.TotalKarma)
		}
		tw.Flush()
	}

	if len(leaderboard) > 0 {
		fmt.Fprintln(w, "\nTop 10 Leaderboard")
		// leaderboard order is the server's; only sliced, never re-sorted
		if len(leaderboard) > 10 {
			leaderboard = leaderboard[:10]
		}
		for i, entry := range leaderboard {
			marker := "  "
			if entry.ID == user.ID {
				marker = "->"
			}
			fmt.Fprintf(w, "%s #%-2d %-20s %d points\n", marker, i+1, entry.Username, entry.KarmaScore)
		}
	}
}

func progressBar(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * progressWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressWidth-filled) + "]"
}
