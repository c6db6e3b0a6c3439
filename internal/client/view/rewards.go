package view

import (
	"fmt"
	"io"

	"github.com/credkarma/credkarma/internal/models"
)

// Rewards renders the reward catalog with each reward's unlock state from
// the caller's point of view.
func Rewards(w io.Writer, rewards []models.RewardWithStatus, user models.User) {
	if len(rewards) == 0 {
		fmt.Fprintln(w, "No rewards available yet.")
		fmt.Fprintln(w, "Run 'credkarma seed' to populate the sample catalog.")
		return
	}

	for _, r := range rewards {
		fmt.Fprintf(w, "%s %s (%s)\n", r.Category.Icon(), r.Title, r.ID)
		fmt.Fprintf(w, "   %s\n", r.Description)
		switch {
		case r.IsUnlocked:
			fmt.Fprintf(w, "   %d karma required — unlocked ✓\n", r.KarmaRequired)
		case r.CanUnlock:
			fmt.Fprintf(w, "   %d karma required — available, run 'unlock %s'\n", r.KarmaRequired, r.ID)
		default:
			fmt.Fprintf(w, "   %d karma required — need %d more karma\n",
				r.KarmaRequired, r.KarmaRequired-user.KarmaScore)
		}
	}
}
