// Package view renders the feature views (feed, karma, rewards, analytics)
// as plain text. Views are purely presentational: they take already-fetched
// data and write to an io.Writer.
package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/credkarma/credkarma/internal/models"
	"github.com/credkarma/credkarma/internal/pagination"
)

// Feed renders one page of the behavior feed with pagination controls.
func Feed(w io.Writer, behaviors []models.Behavior, page int) {
	if len(behaviors) == 0 {
		fmt.Fprintln(w, "No behaviors recorded yet.")
		fmt.Fprintln(w, "Start tracking your credit behavior to see your progress!")
		return
	}

	totalPages := pagination.TotalPages(len(behaviors))
	page = pagination.Clamp(page, totalPages)
	items := pagination.Page(behaviors, page)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tDESCRIPTION\tDATE\tKARMA\t")
	for _, b := range items {
		marker := " "
		if !b.IsRead {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%+d\t\n",
			marker, b.Type.Label(), b.Description,
			b.Date.Format("Jan 02, 2006 15:04"), b.KarmaPoints)
	}
	tw.Flush()

	start := (page-1)*pagination.PageSize + 1
	end := start + len(items) - 1
	fmt.Fprintf(w, "\nShowing %d-%d of %d behaviors\n", start, end, len(behaviors))
	if totalPages > 1 {
		fmt.Fprintf(w, "Pages: %s\n", pageLine(totalPages, page))
	}
}

// pageLine formats the windowed page numbers, bracketing the current page.
func pageLine(totalPages, current int) string {
	parts := make([]string, 0, totalPages)
	for _, p := range pagination.Window(totalPages, current) {
		switch {
		case p == pagination.Gap:
			parts = append(parts, "...")
		case p == current:
			parts = append(parts, fmt.Sprintf("[%d]", p))
		default:
			parts = append(parts, fmt.Sprintf("%d", p))
		}
	}
	return strings.Join(parts, " ")
}
