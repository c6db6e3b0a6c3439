// Package pagination slices an already-fetched list into fixed-size pages
// and produces the page-number window shown under the behavior feed.
package pagination

// PageSize is the fixed number of items per feed page.
const PageSize = 10

// Gap marks a collapsed run of page numbers in a Window result.
const Gap = -1

// windowDelta is how many pages are shown on each side of the current page.
const windowDelta = 2

// TotalPages returns ceil(n / PageSize); 0 when the list is empty.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Clamp restricts page to [1, totalPages]. A totalPages of 0 clamps to 1.
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Page returns the slice of items belonging to the given 1-based page.
// The page is clamped into range first.
func Page[T any](items []T, page int) []T {
	page = Clamp(page, TotalPages(len(items)))
	start := (page - 1) * PageSize
	if start >= len(items) {
		return nil
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Window returns the page numbers to display for the given total and current
// page: always the first and last page plus every page within windowDelta of
// the current one. A run of exactly one hidden page collapses into that page
// number; longer runs collapse into a single Gap marker.
func Window(totalPages, current int) []int {
	var kept []int
	for i := 1; i <= totalPages; i++ {
		if i == 1 || i == totalPages || (i >= current-windowDelta && i <= current+windowDelta) {
			kept = append(kept, i)
		}
	}

	var out []int
	last := 0
	for _, i := range kept {
		if last > 0 {
			switch {
			case i-last == 2:
				out = append(out, last+1)
			case i-last > 2:
				out = append(out, Gap)
			}
		}
		out = append(out, i)
		last = i
	}
	return out
}
