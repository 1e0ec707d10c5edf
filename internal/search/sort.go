package search

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"folioapi/internal/model"
)

// SortOrder selects how SortByDate orders records.
type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// ParseSortOrder maps a query value to a SortOrder. Empty or unknown values
// fall back to SortNewest.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortOldest:
		return SortOldest
	case SortAlphabetical:
		return SortAlphabetical
	default:
		return SortNewest
	}
}

var (
	yearPattern    = regexp.MustCompile(`\d{4}`)
	presentPattern = regexp.MustCompile(`(?i)pr[ée]sent`)
)

// YearOf extracts the sort key of a date span: the largest 4-digit year it
// contains, with a "present"/"présent" marker counting as currentYear.
// A span without any year yields 0.
func YearOf(dateSpan string, currentYear int) int {
	year := 0
	for _, m := range yearPattern.FindAllString(dateSpan, -1) {
		if y, err := strconv.Atoi(m); err == nil && y > year {
			year = y
		}
	}
	if presentPattern.MatchString(dateSpan) && currentYear > year {
		year = currentYear
	}
	return year
}

// SortByDate returns a reordered copy of records. Newest and oldest order by
// YearOf; alphabetical ignores the year and compares case-folded titles.
// Ties keep their input order.
func SortByDate(records []model.ContentRecord, order SortOrder, currentYear int) []model.ContentRecord {
	type keyed struct {
		year  int
		title string
		rec   model.ContentRecord
	}
	fold := cases.Fold()
	items := make([]keyed, len(records))
	for i, r := range records {
		items[i] = keyed{rec: r}
		if order == SortAlphabetical {
			items[i].title = fold.String(r.Title)
		} else {
			items[i].year = YearOf(r.DateSpan, currentYear)
		}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		switch order {
		case SortAlphabetical:
			return strings.Compare(a.title, b.title)
		case SortOldest:
			return a.year - b.year
		default:
			return b.year - a.year
		}
	})

	out := make([]model.ContentRecord, len(items))
	for i, it := range items {
		out[i] = it.rec
	}
	return out
}
